// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package scyllacloud

import (
	"fmt"
	"log"
	"os"
)

// LocalEnv is a simple implementation of the CloudEnv interface that
// doesn't query any metadata service, instead taking its instance
// details from fields set by the caller. This is particularly useful
// for testing, and for generating a profile offline at image build
// time.
type LocalEnv struct {
	// these should be set before running MinimalInit()
	Platform  string // which reference table to use: "aws", "gcp" or "azure"
	Type      string
	DiskCount int
	Logger    *log.Logger
}

// MinimalInit checks the configured platform and sets up logging
func (l *LocalEnv) MinimalInit() error {
	if l.Logger == nil {
		l.Logger = log.New(os.Stdout, "", 0)
	}
	switch l.Platform {
	case "aws", "gcp", "azure":
	default:
		return fmt.Errorf("Unknown platform %q: must be one of aws, gcp, azure", l.Platform)
	}
	if l.DiskCount < 0 {
		l.DiskCount = 0
	}
	return nil
}

func (l *LocalEnv) Name() string {
	return "local"
}

// Detect always succeeds with LocalEnv
func (l *LocalEnv) Detect() bool {
	return true
}

func (l *LocalEnv) InstanceType() (string, error) {
	if l.Type == "" {
		return "", fmt.Errorf("No instance type configured for local platform %s", l.Platform)
	}
	return l.Type, nil
}

// EphemeralDisks makes up device names for the configured disk count,
// in the shape the real platforms report them.
func (l *LocalEnv) EphemeralDisks() ([]string, error) {
	disks := make([]string, l.DiskCount)
	for i := range disks {
		disks[i] = fmt.Sprintf("/dev/nvme%dn1", i)
	}
	return disks, nil
}

func (l *LocalEnv) IOProperties(instanceType string, disks int) (DiskProperties, error) {
	switch l.Platform {
	case "aws":
		return AwsIOProperties(instanceType, disks)
	case "gcp":
		return GcpIOProperties(instanceType, disks)
	case "azure":
		return AzureIOProperties(instanceType, disks)
	}
	return DiskProperties{}, fmt.Errorf("Unknown platform %q: must be one of aws, gcp, azure", l.Platform)
}
