// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package scyllacloud

import (
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/compute/metadata"
)

// GcpEnv reads instance details from the GCE metadata service, and
// enumerates the local SSD NVMe disks from sysfs.
type GcpEnv struct {
	// these should be set before running MinimalInit(), or left to defaults
	SysfsRoot string
	Logger    *log.Logger

	client *metadata.Client
}

// MinimalInit does the bare minimum to initialise the metadata client
func (g *GcpEnv) MinimalInit() error {
	if g.SysfsRoot == "" {
		g.SysfsRoot = "/sys"
	}
	if g.Logger == nil {
		g.Logger = log.New(os.Stdout, "", 0)
	}
	g.client = metadata.NewClient(nil)
	return nil
}

func (g *GcpEnv) Name() string {
	return "gcp"
}

// Detect reports whether the host is running on GCE.
func (g *GcpEnv) Detect() bool {
	return metadata.OnGCE()
}

// InstanceType returns the machine type of the running instance,
// e.g. "n2-highmem-8". The metadata service reports it as a full
// resource path of which only the last element is the machine type.
func (g *GcpEnv) InstanceType() (string, error) {
	mt, err := g.client.Get("instance/machine-type")
	if err != nil {
		return "", fmt.Errorf("Error getting machine type from metadata: %v", err)
	}
	mt = strings.TrimSpace(mt)
	return mt[strings.LastIndex(mt, "/")+1:], nil
}

// EphemeralDisks lists the local SSD NVMe disks attached to the
// instance. Persistent disks attach over virtio-scsi rather than
// NVMe, so only local SSDs are counted.
func (g *GcpEnv) EphemeralDisks() ([]string, error) {
	return nvmeDisksByModel(g.SysfsRoot, gcpEphemeralModel)
}

func (g *GcpEnv) IOProperties(instanceType string, disks int) (DiskProperties, error) {
	return GcpIOProperties(instanceType, disks)
}
