// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package scyllacloud

import (
	"errors"
	"fmt"
	"strings"
)

// DiskProperties describes what the ephemeral storage of an instance
// can sustain. It is written to io_properties.yaml and read by the
// database I/O scheduler at startup; the field order here matches the
// order the scheduler documentation lists them in.
type DiskProperties struct {
	Mountpoint     string `yaml:"mountpoint"`
	ReadIOPS       uint64 `yaml:"read_iops"`
	ReadBandwidth  uint64 `yaml:"read_bandwidth"`
	WriteIOPS      uint64 `yaml:"write_iops"`
	WriteBandwidth uint64 `yaml:"write_bandwidth"`
}

// ErrNotDetected is returned by DetectCloud when the host does not
// answer on the metadata service of any supported platform.
var ErrNotDetected = errors.New("no supported cloud platform detected")

// UnsupportedError is returned when an instance shape has no entry in
// the reference table. The caller should fall back to measuring the
// disks with iotune.
type UnsupportedError struct {
	InstanceType string
	Disks        int
}

func (e UnsupportedError) Error() string {
	return fmt.Sprintf("no precomputed io properties for instance type %q with %d ephemeral disk(s); run iotune to calibrate manually", e.InstanceType, e.Disks)
}

// ioRates holds the four numbers that make up a profile, either as
// measured totals or as per disk base rates depending on the entry
// they sit in. Bandwidths are bytes per second.
type ioRates struct {
	readIOPS, readBandwidth, writeIOPS, writeBandwidth uint64
}

// ioEntry is a row of the reference table. Rows are either measured
// on the whole instance (used verbatim), or measured per disk and
// multiplied by the number of ephemeral disks actually attached.
type ioEntry struct {
	perDisk bool
	rates   ioRates
}

// properties turns a table row into the profile for an instance with
// the given number of ephemeral disks. An instance with no ephemeral
// disks has nothing to put a data directory on, so it is never
// classified, whatever kind of row matched.
func (e ioEntry) properties(instanceType string, disks int) (DiskProperties, error) {
	if disks < 1 {
		return DiskProperties{}, UnsupportedError{InstanceType: instanceType, Disks: disks}
	}
	r := e.rates
	if e.perDisk {
		n := uint64(disks)
		r = ioRates{r.readIOPS * n, r.readBandwidth * n, r.writeIOPS * n, r.writeBandwidth * n}
	}
	return DiskProperties{
		Mountpoint:     DefaultDataDir,
		ReadIOPS:       r.readIOPS,
		ReadBandwidth:  r.readBandwidth,
		WriteIOPS:      r.writeIOPS,
		WriteBandwidth: r.writeBandwidth,
	}, nil
}

// SplitInstanceType decomposes an AWS style instance type such as
// "i4i.xlarge" into its class ("i4i") and size ("xlarge"). Anything
// that doesn't have exactly one dot with text either side of it is
// rejected rather than guessed at.
func SplitInstanceType(instanceType string) (class string, size string, err error) {
	parts := strings.Split(instanceType, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("Unparseable instance type %q", instanceType)
	}
	return parts[0], parts[1], nil
}

// AwsIOProperties looks up the profile for an EC2 instance type with
// the given number of ephemeral disks. Exact type rows take
// precedence over the per class fallback rules, as the smallest
// members of a family were measured by hand and do not scale
// linearly with disk count.
func AwsIOProperties(instanceType string, disks int) (DiskProperties, error) {
	if e, ok := awsExactIO[instanceType]; ok {
		return e.properties(instanceType, disks)
	}
	class, _, err := SplitInstanceType(instanceType)
	if err != nil {
		return DiskProperties{}, err
	}
	if e, ok := awsClassIO[class]; ok {
		return e.properties(instanceType, disks)
	}
	return DiskProperties{}, UnsupportedError{InstanceType: instanceType, Disks: disks}
}

// GcpIOProperties looks up the profile for a GCE instance. Local SSD
// performance on GCE depends only on how many devices are attached,
// in the discrete regimes the vendor documents; a disk count between
// regimes is not interpolated, it just fails classification.
func GcpIOProperties(instanceType string, disks int) (DiskProperties, error) {
	for _, t := range gcpDiskTiers {
		if disks >= t.minDisks && disks <= t.maxDisks {
			return t.entry.properties(instanceType, disks)
		}
	}
	return DiskProperties{}, UnsupportedError{InstanceType: instanceType, Disks: disks}
}

// AzureIOProperties looks up the profile for an Azure L series
// instance, which scales linearly with the local NVMe disk count.
func AzureIOProperties(instanceType string, disks int) (DiskProperties, error) {
	return azureDiskIO.properties(instanceType, disks)
}
