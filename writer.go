// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package scyllacloud

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ioPropertiesFile is the on disk shape of io_properties.yaml: a
// mapping with a single "disks" key holding a list of profiles, one
// per mountpoint. The machine images only ever have the one data
// directory, so the list always has exactly one entry.
type ioPropertiesFile struct {
	Disks []DiskProperties `yaml:"disks"`
}

// WriteIOProperties serialises the profile to path. The consuming
// database process runs under its own account, so the file is made
// world readable, and it is renamed into place from a temporary file
// so that a reader can never see a partial profile.
func WriteIOProperties(path string, props DiskProperties) error {
	b, err := yaml.Marshal(&ioPropertiesFile{Disks: []DiskProperties{props}})
	if err != nil {
		return fmt.Errorf("Error serialising io properties: %v", err)
	}
	return writeFileAtomic(path, b)
}

// ReadIOProperties parses a profile file written by WriteIOProperties.
func ReadIOProperties(path string) (DiskProperties, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return DiskProperties{}, err
	}
	var f ioPropertiesFile
	if err = yaml.Unmarshal(b, &f); err != nil {
		return DiskProperties{}, fmt.Errorf("Error parsing %s: %v", path, err)
	}
	if len(f.Disks) != 1 {
		return DiskProperties{}, fmt.Errorf("Expected exactly one disks entry in %s, found %d", path, len(f.Disks))
	}
	return f.Disks[0], nil
}

// WriteIOConf writes the configuration fragment that the database
// launch wrapper sources to point the I/O scheduler at the profile
// file.
func WriteIOConf(path string, propsPath string) error {
	b := []byte(fmt.Sprintf("SEASTAR_IO=\"--io-properties-file=%s\"\n", propsPath))
	return writeFileAtomic(path, b)
}

// writeFileAtomic writes b to a temporary file next to path, makes it
// world readable, and renames it into place. On any failure the
// temporary file is removed and path is left untouched.
func writeFileAtomic(path string, b []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".")
	if err != nil {
		return fmt.Errorf("Error creating temporary file for %s: %v", path, err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)
	if _, err = f.Write(b); err != nil {
		f.Close()
		return fmt.Errorf("Error writing %s: %v", path, err)
	}
	if err = f.Chmod(0644); err != nil {
		f.Close()
		return fmt.Errorf("Error setting permissions on %s: %v", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("Error writing %s: %v", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("Error renaming %s into place: %v", path, err)
	}
	return nil
}
