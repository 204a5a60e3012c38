// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package scyllacloud

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteIOProperties(t *testing.T) {
	props := DiskProperties{
		Mountpoint:     DefaultDataDir,
		ReadIOPS:       109954,
		ReadBandwidth:  763580096,
		WriteIOPS:      61008,
		WriteBandwidth: 561926784,
	}
	path := filepath.Join(t.TempDir(), IOPropertiesFile)

	err := WriteIOProperties(path, props)
	if err != nil {
		t.Fatalf("Failed to write io properties: %v", err)
	}

	// the database process runs under a different account, so the
	// file has to be readable by everyone
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	if fi.Mode().Perm() != 0644 {
		t.Fatalf("Expected permissions 0644, got %v", fi.Mode().Perm())
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s back: %v", path, err)
	}
	if !strings.HasPrefix(string(b), "disks:") {
		t.Fatalf("Expected file to start with a disks mapping, got:\n%s", b)
	}
	for _, key := range []string{"mountpoint:", "read_iops:", "read_bandwidth:", "write_iops:", "write_bandwidth:"} {
		if !strings.Contains(string(b), key) {
			t.Fatalf("Expected file to contain %q, got:\n%s", key, b)
		}
	}

	got, err := ReadIOProperties(path)
	if err != nil {
		t.Fatalf("Failed to parse written file: %v", err)
	}
	if got != props {
		t.Fatalf("Round trip changed the profile: wrote %+v, read %+v", props, got)
	}
}

func TestWriteIOPropertiesFailureLeavesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nonexistent")
	path := filepath.Join(dir, IOPropertiesFile)

	err := WriteIOProperties(path, DiskProperties{Mountpoint: DefaultDataDir})
	if err == nil {
		t.Fatalf("Expected write to %s to fail", path)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Expected no file at %s after failed write, stat: %v", path, err)
	}
}

func TestWriteIOConf(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, IOConfFile)
	propsPath := filepath.Join(dir, IOPropertiesFile)

	err := WriteIOConf(path, propsPath)
	if err != nil {
		t.Fatalf("Failed to write io conf: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s back: %v", path, err)
	}
	expected := "SEASTAR_IO=\"--io-properties-file=" + propsPath + "\"\n"
	if string(b) != expected {
		t.Fatalf("Expected %q, got %q", expected, b)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	if fi.Mode().Perm() != 0644 {
		t.Fatalf("Expected permissions 0644, got %v", fi.Mode().Perm())
	}
}

func TestWriteIOPropertiesOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), IOPropertiesFile)

	first := DiskProperties{Mountpoint: DefaultDataDir, ReadIOPS: 1, ReadBandwidth: 2, WriteIOPS: 3, WriteBandwidth: 4}
	second := DiskProperties{Mountpoint: DefaultDataDir, ReadIOPS: 5, ReadBandwidth: 6, WriteIOPS: 7, WriteBandwidth: 8}
	for _, props := range []DiskProperties{first, second} {
		if err := WriteIOProperties(path, props); err != nil {
			t.Fatalf("Failed to write io properties: %v", err)
		}
	}

	got, err := ReadIOProperties(path)
	if err != nil {
		t.Fatalf("Failed to parse written file: %v", err)
	}
	if got != second {
		t.Fatalf("Expected the second write to win, read %+v", got)
	}
}
