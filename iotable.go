// Copyright 2026 the scylla-machine-image authors.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package scyllacloud

// The numbers in this file are compiled from vendor documentation and
// from iotune runs on real hardware; nothing here is measured at
// runtime. Rates are in the ioRates field order: read IOPS, read
// bandwidth, write IOPS, write bandwidth.

// awsExactIO rows match a full instance type before any class rule is
// tried. The smallest family members have hand measured totals which
// must never be scaled by disk count; the mid size i3en rows were
// measured per disk but differ from the rest of their family.
var awsExactIO = map[string]ioEntry{
	"i3.large":  {rates: ioRates{111000, 653925080, 36800, 215066473}},
	"i3.xlarge": {rates: ioRates{200800, 1185106376, 53180, 423621267}},

	"i3en.large":   {rates: ioRates{43315, 330301440, 33177, 165675008}},
	"i3en.xlarge":  {perDisk: true, rates: ioRates{84480, 666894336, 66969, 333447168}},
	"i3en.2xlarge": {perDisk: true, rates: ioRates{84480, 666894336, 66969, 333447168}},

	"i4i.large":    {rates: ioRates{54987, 378494048, 30459, 279713216}},
	"i4i.xlarge":   {rates: ioRates{109954, 763580096, 61008, 561926784}},
	"i4i.2xlarge":  {rates: ioRates{218786, 1523206144, 121499, 1119922176}},
	"i4i.4xlarge":  {rates: ioRates{437572, 3046412288, 242998, 2239844352}},
	"i4i.8xlarge":  {rates: ioRates{875144, 6092824576, 485996, 4479688704}},
	"i4i.16xlarge": {rates: ioRates{1750288, 12185649152, 971992, 8959377408}},
	"i4i.32xlarge": {rates: ioRates{3500576, 24371298304, 1943984, 17918754816}},
	"i4i.metal":    {rates: ioRates{3500576, 24371298304, 1943984, 17918754816}},
}

// awsClassIO rows are the per disk fallback for family members
// without an exact row above. All of them scale linearly with the
// number of attached instance store disks.
var awsClassIO = map[string]ioEntry{
	"i2":     {perDisk: true, rates: ioRates{64000, 507338935, 57100, 483141731}},
	"i3":     {perDisk: true, rates: ioRates{411200, 2015280128, 181500, 808189952}},
	"i3en":   {perDisk: true, rates: ioRates{257024, 2043674624, 174080, 1024458752}},
	"im4gn":  {perDisk: true, rates: ioRates{136422, 1152868352, 92184, 508926453}},
	"is4gen": {perDisk: true, rates: ioRates{136422, 1152868352, 92184, 508926453}},
}

// gcpDiskTiers are the local SSD scaling regimes from the GCE
// documentation. Performance scales per device up to 3 devices and
// then moves in fixed steps; counts the vendor doesn't document
// (9-15, 17-23, above 24) have no defined behaviour and fail
// classification.
var gcpDiskTiers = []struct {
	minDisks, maxDisks int
	entry              ioEntry
}{
	{1, 3, ioEntry{perDisk: true, rates: ioRates{170000, 660000000, 90000, 350000000}}},
	{4, 8, ioEntry{rates: ioRates{680000, 2650000000, 360000, 1400000000}}},
	{16, 16, ioEntry{rates: ioRates{1600000, 6240000000, 800000, 3120000000}}},
	{24, 24, ioEntry{rates: ioRates{2400000, 9360000000, 1200000, 4680000000}}},
}

// azureDiskIO is the per disk rate of the local NVMe storage on the
// L series instances, the only Azure family the images support.
var azureDiskIO = ioEntry{perDisk: true, rates: ioRates{400000, 2000000000, 276217, 1365000000}}
