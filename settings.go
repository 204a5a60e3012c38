// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package scyllacloud

// This file contains various image specific settings; change this if
// your machine image layout differs from the stock ScyllaDB one.

// Locations consumed by the database at startup
const (
	DefaultScyllaDir = "/etc/scylla.d"
	IOPropertiesFile = "io_properties.yaml"
	IOConfFile       = "io.conf"
	DefaultDataDir   = "/var/lib/scylla"
)

// Metadata service details
const (
	azureMetadataEndpoint = "http://169.254.169.254"
	azureAPIVersion       = "2021-02-01"
)

// NVMe model strings reported for ephemeral (instance store) disks,
// as opposed to network attached volumes, on each platform
const (
	awsEphemeralModel   = "Amazon EC2 NVMe Instance Storage"
	gcpEphemeralModel   = "nvme_card"
	azureEphemeralModel = "Microsoft NVMe Direct Disk"
)
