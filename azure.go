// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package scyllacloud

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// AzureEnv reads instance details from the Azure instance metadata
// service, and enumerates the local NVMe disks from sysfs. The
// metadata service is queried directly over HTTP; every request must
// carry a "Metadata: true" header and a pinned api-version.
type AzureEnv struct {
	// these should be set before running MinimalInit(), or left to defaults
	Endpoint  string // metadata service endpoint override, used in testing
	SysfsRoot string
	Logger    *log.Logger

	client *http.Client
}

// MinimalInit does the bare minimum to initialise the metadata client
func (z *AzureEnv) MinimalInit() error {
	if z.Endpoint == "" {
		z.Endpoint = azureMetadataEndpoint
	}
	if z.SysfsRoot == "" {
		z.SysfsRoot = "/sys"
	}
	if z.Logger == nil {
		z.Logger = log.New(os.Stdout, "", 0)
	}
	z.client = &http.Client{Timeout: 2 * time.Second}
	return nil
}

func (z *AzureEnv) Name() string {
	return "azure"
}

// metadata queries a single leaf of the instance metadata tree in
// text format.
func (z *AzureEnv) metadata(path string) (string, error) {
	req, err := http.NewRequest("GET", z.Endpoint+path+"?api-version="+azureAPIVersion+"&format=text", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Metadata", "true")
	resp, err := z.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Metadata request for %s failed: %s", path, resp.Status)
	}
	return strings.TrimSpace(string(b)), nil
}

// Detect reports whether the Azure metadata service answers.
func (z *AzureEnv) Detect() bool {
	_, err := z.metadata("/metadata/instance/compute/vmSize")
	return err == nil
}

// InstanceType returns the VM size of the running instance,
// e.g. "Standard_L16s_v2".
func (z *AzureEnv) InstanceType() (string, error) {
	t, err := z.metadata("/metadata/instance/compute/vmSize")
	if err != nil {
		return "", fmt.Errorf("Error getting vm size from metadata: %v", err)
	}
	return t, nil
}

// EphemeralDisks lists the local NVMe disks attached to the instance.
// The OS and temp disks attach as SCSI devices, so only the directly
// attached NVMe storage is counted.
func (z *AzureEnv) EphemeralDisks() ([]string, error) {
	return nvmeDisksByModel(z.SysfsRoot, azureEphemeralModel)
}

func (z *AzureEnv) IOProperties(instanceType string, disks int) (DiskProperties, error) {
	return AzureIOProperties(instanceType, disks)
}
