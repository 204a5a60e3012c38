// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package scyllacloud

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// fakeSysfs builds a sysfs block tree in a temporary directory with
// the given device name to model string pairs.
func fakeSysfs(t *testing.T, models map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for dev, model := range models {
		dir := filepath.Join(root, "block", dev, "device")
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
		// sysfs pads model strings and ends them with a newline
		if err := os.WriteFile(filepath.Join(dir, "model"), []byte(model+"\n"), 0644); err != nil {
			t.Fatalf("Failed to write model for %s: %v", dev, err)
		}
	}
	return root
}

func TestNvmeDisksByModel(t *testing.T) {
	cases := []struct {
		name   string
		models map[string]string
		model  string
		disks  []string
	}{
		{
			name: "aws",
			models: map[string]string{
				"nvme0n1": "Amazon Elastic Block Store              ",
				"nvme1n1": "Amazon EC2 NVMe Instance Storage        ",
				"nvme2n1": "Amazon EC2 NVMe Instance Storage        ",
				"xvda":    "",
			},
			model: awsEphemeralModel,
			disks: []string{"/dev/nvme1n1", "/dev/nvme2n1"},
		},
		{
			name: "gcp numbered model",
			models: map[string]string{
				"nvme0n1": "nvme_card0",
				"nvme1n1": "nvme_card1",
				"sda":     "PersistentDisk",
			},
			model: gcpEphemeralModel,
			disks: []string{"/dev/nvme0n1", "/dev/nvme1n1"},
		},
		{
			name: "azure",
			models: map[string]string{
				"nvme0n1": "Microsoft NVMe Direct Disk              ",
				"sda":     "Virtual Disk",
				"sdb":     "Virtual Disk",
			},
			model: azureEphemeralModel,
			disks: []string{"/dev/nvme0n1"},
		},
		{
			name:   "no devices",
			models: map[string]string{},
			model:  awsEphemeralModel,
			disks:  nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			root := fakeSysfs(t, c.models)
			disks, err := nvmeDisksByModel(root, c.model)
			if err != nil {
				t.Fatalf("Failed to enumerate disks: %v", err)
			}
			if !reflect.DeepEqual(disks, c.disks) {
				t.Fatalf("Expected %v, got %v", c.disks, disks)
			}
		})
	}
}

func TestNvmeDisksByModelMissingModelFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "block", "nvme0n1")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", dir, err)
	}

	disks, err := nvmeDisksByModel(root, awsEphemeralModel)
	if err != nil {
		t.Fatalf("Failed to enumerate disks: %v", err)
	}
	if len(disks) != 0 {
		t.Fatalf("Expected no disks for a device without a model, got %v", disks)
	}
}
