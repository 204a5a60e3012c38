// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The scyllacloud package contains tools and functions to set up ScyllaDB
machine images on the supported cloud platforms (AWS, GCP and Azure),
with a focus on calibrating the I/O scheduler of the database for the
instance shape an image ends up running on.

Introduction

ScyllaDB schedules its disk I/O against a description of what the
underlying disks can do: how many read and write operations per second
they sustain, and at what bandwidth. On bare hardware these numbers are
measured with the iotune tool at first boot, which takes several
minutes. On the big cloud platforms the measuring is unnecessary, as
instances of the same shape have identical local NVMe storage; the
numbers only need measuring once, and after that every instance of that
shape can use a precompiled profile and skip iotune entirely.

This package holds that precompiled reference table, together with the
plumbing needed to apply it: probing which cloud platform the host runs
on, identifying the instance type, counting the attached ephemeral
disks, and writing the io_properties.yaml file (plus the io.conf
fragment that points the database launch wrapper at it).

All of the tools provided in this package will give information on what
they do and how they work with the '-h' flag, so for example to get
usage information on the iosetup tool simply run the following:
  iosetup -h

Tools

The central tool is iosetup, which is run once by the image setup
sequence on first boot. It walks through platform detection, instance
identification, profile lookup and file writing, and exits non zero
without writing anything if the instance shape is not in the reference
table, in which case the operator should fall back to running iotune.

The lsinstance tool prints what iosetup would decide without writing
any files: the detected platform, the instance type and its class and
size, the ephemeral disks found, and the disk performance profile that
would be applied. It is useful when preparing support for a new
instance shape.

Local operation

While the package was built to run inside a cloud instance, there is
also a local mode that can be used to generate a profile offline, for
example when baking a profile into an image at build time, with all
the same table lookup rules that the cloud modes use. You can use this
by passing the '-c local' flag together with a platform, an instance
type and a disk count:

  iosetup -c local -p aws -t i4i.xlarge -d 1 -o /tmp/scylla.d

Note that local mode performs no detection at all; it trusts the
platform, type and disk count it is given.
*/
package scyllacloud
