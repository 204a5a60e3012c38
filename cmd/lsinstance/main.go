// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// lsinstance lists cloud instance details useful for I/O setup.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	scyllacloud "github.com/yaronkaikov/scylla-machine-image"
)

const usage = `Usage: lsinstance [-c cloud]

Lists details of the cloud instance this host runs on:

- Cloud platform
- Instance type, with its class and size
- Ephemeral disks attached
- Disk performance profile that iosetup would apply

Nothing is written; this is a dry run of the iosetup decision,
useful when preparing support for a new instance shape.
`

type InstanceLister interface {
	MinimalInit() error
	Name() string
	InstanceType() (string, error)
	EphemeralDisks() ([]string, error)
	IOProperties(instanceType string, disks int) (scyllacloud.DiskProperties, error)
}

func main() {
	conntype := flag.String("c", "auto", "cloud to use ('auto', 'aws', 'gcp' or 'azure')")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "", 0)

	var env InstanceLister
	switch *conntype {
	case "auto":
		detected, err := scyllacloud.DetectCloud(logger)
		if err != nil {
			log.Fatalln("Failed to detect a cloud platform:", err)
		}
		env = detected
	case "aws":
		env = &scyllacloud.AwsEnv{Logger: logger}
	case "gcp":
		env = &scyllacloud.GcpEnv{Logger: logger}
	case "azure":
		env = &scyllacloud.AzureEnv{Logger: logger}
	default:
		log.Fatalln("Unknown cloud type:", *conntype)
	}
	if *conntype != "auto" {
		err := env.MinimalInit()
		if err != nil {
			log.Fatalln("Failed to set up", env.Name(), "platform:", err)
		}
	}

	fmt.Println("Platform:", env.Name())

	if aws, ok := env.(*scyllacloud.AwsEnv); ok {
		region, id, err := aws.Identity()
		if err != nil {
			log.Println("Error getting instance identity:", err)
		} else {
			fmt.Println("Region:", region)
			fmt.Println("Instance id:", id)
		}
	}

	itype, err := env.InstanceType()
	if err != nil {
		log.Fatalln("Failed to identify instance:", err)
	}
	fmt.Println("Instance type:", itype)
	if class, size, err := scyllacloud.SplitInstanceType(itype); err == nil {
		fmt.Println("Instance class:", class)
		fmt.Println("Instance size:", size)
	}

	devs, err := env.EphemeralDisks()
	if err != nil {
		log.Fatalln("Failed to enumerate ephemeral disks:", err)
	}
	fmt.Printf("Ephemeral disks (%d): %s\n", len(devs), strings.Join(devs, " "))

	props, err := env.IOProperties(itype, len(devs))
	if err != nil {
		log.Fatalln("No profile would be applied:", err)
	}
	fmt.Println("Mountpoint:", props.Mountpoint)
	fmt.Println("Read iops:", props.ReadIOPS)
	fmt.Println("Read bandwidth:", props.ReadBandwidth)
	fmt.Println("Write iops:", props.WriteIOPS)
	fmt.Println("Write bandwidth:", props.WriteBandwidth)
}
