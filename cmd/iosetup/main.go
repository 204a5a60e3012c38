// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// iosetup generates the io_properties.yaml and io.conf files that
// calibrate the ScyllaDB I/O scheduler for the cloud instance the
// host runs on.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	scyllacloud "github.com/yaronkaikov/scylla-machine-image"
)

const usage = `Usage: iosetup [-v] [-c cloud] [-p platform] [-t type] [-d disks] [-o dir]

Detects the cloud platform the host runs on, identifies the instance
type and the attached ephemeral disks, looks up the disk performance
characteristics for that instance shape in the reference table, and
writes them to io_properties.yaml, plus a companion io.conf pointing
the database launch wrapper at it.

If the instance shape has no entry in the reference table nothing is
written and iosetup exits non zero; in that case calibrate manually
by running iotune.

The -c flag can force a platform rather than detecting one. With
'-c local' no metadata service is queried at all, and the profile is
generated from the -p, -t and -d flags; this is used when baking a
profile into an image at build time.
`

// NullWriter is used so non-verbose logging may be discarded
type NullWriter bool

func (w NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

type IOSetupper interface {
	MinimalInit() error
	Name() string
	InstanceType() (string, error)
	EphemeralDisks() ([]string, error)
	IOProperties(instanceType string, disks int) (scyllacloud.DiskProperties, error)
}

func main() {
	verbose := flag.Bool("v", false, "verbose")
	conntype := flag.String("c", "auto", "cloud to use ('auto', 'aws', 'gcp', 'azure' or 'local')")
	platform := flag.String("p", "aws", "reference table to use with -c local ('aws', 'gcp' or 'azure')")
	instancetype := flag.String("t", "", "instance type override (required with -c local)")
	disks := flag.Int("d", -1, "ephemeral disk count override (required with -c local)")
	outdir := flag.String("o", scyllacloud.DefaultScyllaDir, "directory to write io_properties.yaml and io.conf to")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", log.LstdFlags)
	} else {
		var n NullWriter
		verboselog = log.New(n, "", 0)
	}

	var env IOSetupper
	switch *conntype {
	case "auto":
		detected, err := scyllacloud.DetectCloud(verboselog)
		if err != nil {
			log.Fatalln("Failed to detect a cloud platform:", err, "- run iotune to calibrate manually")
		}
		env = detected
	case "aws":
		env = &scyllacloud.AwsEnv{Logger: verboselog}
	case "gcp":
		env = &scyllacloud.GcpEnv{Logger: verboselog}
	case "azure":
		env = &scyllacloud.AzureEnv{Logger: verboselog}
	case "local":
		if *instancetype == "" {
			log.Fatalln("The -t flag is required with -c local; see iosetup -h")
		}
		env = &scyllacloud.LocalEnv{Platform: *platform, Type: *instancetype, DiskCount: *disks, Logger: verboselog}
	default:
		log.Fatalln("Unknown cloud type:", *conntype)
	}
	if *conntype != "auto" {
		err := env.MinimalInit()
		if err != nil {
			log.Fatalln("Failed to set up", env.Name(), "platform:", err)
		}
	}

	itype := *instancetype
	if itype == "" {
		var err error
		itype, err = env.InstanceType()
		if err != nil {
			log.Fatalln("Failed to identify instance:", err)
		}
	}
	verboselog.Println("Instance type:", itype)

	ndisks := *disks
	if ndisks < 0 {
		devs, err := env.EphemeralDisks()
		if err != nil {
			log.Fatalln("Failed to enumerate ephemeral disks:", err)
		}
		verboselog.Println("Ephemeral disks:", strings.Join(devs, " "))
		ndisks = len(devs)
	}

	props, err := env.IOProperties(itype, ndisks)
	if err != nil {
		log.Fatalln("Failed to classify instance:", err)
	}

	propsPath := filepath.Join(*outdir, scyllacloud.IOPropertiesFile)
	confPath := filepath.Join(*outdir, scyllacloud.IOConfFile)
	err = scyllacloud.WriteIOProperties(propsPath, props)
	if err != nil {
		log.Fatalln("Failed to write io properties:", err)
	}
	err = scyllacloud.WriteIOConf(confPath, propsPath)
	if err != nil {
		log.Fatalln("Failed to write io conf:", err)
	}
	log.Println("Wrote", propsPath, "and", confPath)
}
