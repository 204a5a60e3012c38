// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package scyllacloud

import (
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
)

// AwsEnv reads instance details from the EC2 instance metadata
// service, and enumerates the instance store NVMe disks from sysfs.
type AwsEnv struct {
	// these should be set before running MinimalInit(), or left to defaults
	Endpoint  string // metadata service endpoint override, used in testing
	SysfsRoot string
	Logger    *log.Logger

	sess *session.Session
	svc  *ec2metadata.EC2Metadata
}

// MinimalInit does the bare minimum to initialise the metadata client
func (a *AwsEnv) MinimalInit() error {
	if a.SysfsRoot == "" {
		a.SysfsRoot = "/sys"
	}
	if a.Logger == nil {
		a.Logger = log.New(os.Stdout, "", 0)
	}

	var err error
	a.sess, err = session.NewSession()
	if err != nil {
		return fmt.Errorf("Failed to set up aws session: %v", err)
	}
	cfg := aws.NewConfig().WithMaxRetries(0)
	if a.Endpoint != "" {
		cfg = cfg.WithEndpoint(a.Endpoint)
	}
	a.svc = ec2metadata.New(a.sess, cfg)

	return nil
}

func (a *AwsEnv) Name() string {
	return "aws"
}

// Detect reports whether the EC2 metadata service answers.
func (a *AwsEnv) Detect() bool {
	return a.svc.Available()
}

// InstanceType returns the instance type of the running instance,
// e.g. "i4i.xlarge".
func (a *AwsEnv) InstanceType() (string, error) {
	t, err := a.svc.GetMetadata("instance-type")
	if err != nil {
		return "", fmt.Errorf("Error getting instance type from metadata: %v", err)
	}
	return t, nil
}

// Identity returns the region and instance id of the running
// instance, from its identity document.
func (a *AwsEnv) Identity() (region string, instanceID string, err error) {
	doc, err := a.svc.GetInstanceIdentityDocument()
	if err != nil {
		return "", "", fmt.Errorf("Error getting instance identity document: %v", err)
	}
	return doc.Region, doc.InstanceID, nil
}

// EphemeralDisks lists the local NVMe instance store disks attached
// to the instance. EBS volumes also show up as NVMe devices but
// report a different model, so they are not included.
func (a *AwsEnv) EphemeralDisks() ([]string, error) {
	return nvmeDisksByModel(a.SysfsRoot, awsEphemeralModel)
}

func (a *AwsEnv) IOProperties(instanceType string, disks int) (DiskProperties, error) {
	return AwsIOProperties(instanceType, disks)
}
