// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package scyllacloud

import (
	"log"
	"os"
)

// CloudEnv is the interface to a cloud platform that the setup tools
// run against. AwsEnv, GcpEnv and AzureEnv implement it by querying
// the metadata service of their platform, and LocalEnv implements it
// without any metadata access at all.
type CloudEnv interface {
	MinimalInit() error
	Detect() bool
	Name() string
	InstanceType() (string, error)
	EphemeralDisks() ([]string, error)
	IOProperties(instanceType string, disks int) (DiskProperties, error)
}

// DetectCloud works out which supported cloud platform the host is
// running on by probing the metadata service of each in turn, in a
// fixed order. A platform whose client fails to initialise is treated
// the same as one whose probe doesn't answer, as either way we cannot
// be running on it. If nothing answers the host isn't in a recognised
// cloud and ErrNotDetected is returned.
func DetectCloud(logger *log.Logger) (CloudEnv, error) {
	if logger == nil {
		logger = log.New(os.Stdout, "", 0)
	}
	envs := []CloudEnv{
		&AwsEnv{Logger: logger},
		&GcpEnv{Logger: logger},
		&AzureEnv{Logger: logger},
	}
	for _, env := range envs {
		if err := env.MinimalInit(); err != nil {
			logger.Println("Skipping", env.Name(), "platform:", err)
			continue
		}
		logger.Println("Probing for", env.Name(), "platform")
		if env.Detect() {
			logger.Println("Detected", env.Name(), "platform")
			return env, nil
		}
	}
	return nil, ErrNotDetected
}
