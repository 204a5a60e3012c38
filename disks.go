// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package scyllacloud

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// nvmeDisksByModel lists the NVMe block devices whose reported model
// starts with the given string, returning their /dev paths. Model
// strings in sysfs are padded, and on some platforms numbered, hence
// the prefix match. Only whole disks appear under <sysfs>/block, so
// partitions need no special handling.
func nvmeDisksByModel(sysfsRoot string, model string) ([]string, error) {
	devs, err := filepath.Glob(filepath.Join(sysfsRoot, "block", "nvme*"))
	if err != nil {
		return nil, err
	}
	var disks []string
	for _, d := range devs {
		b, err := os.ReadFile(filepath.Join(d, "device", "model"))
		if err != nil {
			// a device can disappear mid scan; it isn't ours to count
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(string(b)), model) {
			disks = append(disks, filepath.Join("/dev", filepath.Base(d)))
		}
	}
	sort.Strings(disks)
	return disks, nil
}
