package catalog

import (
	"github.com/pkg/errors"
	"github.com/ridge/must"
	"github.com/samber/lo"
)

// Latest is the alias key resolving to the current recommended release.
const Latest = "latest"

// VersionEntry describes a single onload release known to the tool.
type VersionEntry struct {
	// Name is the release version string and the key used to request it
	Name string

	// Checksum is the md5 sum of the release package
	Checksum string

	// Driver is the sfc net driver version shipped with the release
	Driver string

	// URL points at the downloadable release package. Empty means the
	// package comes from the legacy source configured in the build
	// definition.
	URL string
}

// FlavorEntry describes an OS flavor images may be built for.
type FlavorEntry struct {
	// Name is the key used to request the flavor
	Name string

	// OS describes the target distribution
	OS string
}

// Dockerfile returns the build definition file used for the flavor.
func (f FlavorEntry) Dockerfile() string {
	return "Dockerfile." + f.Name
}

// New returns the catalog of known onload releases and OS flavors.
func New() *Catalog {
	c := &Catalog{
		versions: []VersionEntry{
			{
				Name:     "201805-u1",
				Checksum: "0fbdb8b5c4bb3a0e3b1518a5c73704a8",
				Driver:   "4.15.3.1011",
			},
			{
				Name:     "201811-u1",
				Checksum: "5dbd6ee7e5cbe0b0e53fb57bb4b5ce27",
				Driver:   "4.15.10.1004",
			},
			{
				Name:     "7.1.3.202",
				Checksum: "7ca07b85f4d6d99db3f08fd2d0eb1ca1",
				Driver:   "5.3.8.1112",
				URL:      "https://github.com/Xilinx-CNS/onload/releases/download/v7.1.3.202/onload-7.1.3.202.tar.gz",
			},
			{
				Name:     "8.0.2.51",
				Checksum: "2a0e909fe9a3f1d17a4a1e3df43f9c29",
				Driver:   "5.3.10.1020",
				URL:      "https://github.com/Xilinx-CNS/onload/releases/download/v8.0.2.51/onload-8.0.2.51.tar.gz",
			},
			{
				Name:     "8.1.2.26",
				Checksum: "d5c5b1b7f6dd4bb9a53c3e1f82ce05e7",
				Driver:   "5.3.12.1008",
				URL:      "https://github.com/Xilinx-CNS/onload/releases/download/v8.1.2.26/onload-8.1.2.26.tar.gz",
			},
		},
		current: "8.1.2.26",
		flavors: []FlavorEntry{
			{Name: "trusty", OS: "Ubuntu 14.04 LTS (Trusty Tahr)"},
			{Name: "xenial", OS: "Ubuntu 16.04 LTS (Xenial Xerus)"},
			{Name: "bionic", OS: "Ubuntu 18.04 LTS (Bionic Beaver)"},
			{Name: "focal", OS: "Ubuntu 20.04 LTS (Focal Fossa)"},
			{Name: "jammy", OS: "Ubuntu 22.04 LTS (Jammy Jellyfish)"},
			{Name: "centos7", OS: "CentOS 7"},
			{Name: "rocky8", OS: "Rocky Linux 8"},
		},
	}

	c.versionIdx = lo.KeyBy(c.versions, func(e VersionEntry) string {
		return e.Name
	})
	c.flavorIdx = lo.KeyBy(c.flavors, func(e FlavorEntry) string {
		return e.Name
	})
	must.OK(c.validate())

	return c
}

// Catalog is the immutable reference data of known releases and flavors.
type Catalog struct {
	versions []VersionEntry
	flavors  []FlavorEntry
	current  string

	versionIdx map[string]VersionEntry
	flavorIdx  map[string]FlavorEntry
}

// Version resolves the named release, following the latest alias.
func (c *Catalog) Version(name string) (VersionEntry, bool) {
	if name == Latest {
		name = c.current
	}
	e, ok := c.versionIdx[name]
	return e, ok
}

// Flavor resolves the named flavor.
func (c *Catalog) Flavor(name string) (FlavorEntry, bool) {
	e, ok := c.flavorIdx[name]
	return e, ok
}

// Versions returns known releases in catalog order, alias excluded.
func (c *Catalog) Versions() []VersionEntry {
	return append([]VersionEntry(nil), c.versions...)
}

// Flavors returns known flavors in catalog order.
func (c *Catalog) Flavors() []FlavorEntry {
	return append([]FlavorEntry(nil), c.flavors...)
}

func (c *Catalog) validate() error {
	if len(c.versionIdx) != len(c.versions) {
		return errors.New("duplicate version keys in catalog")
	}
	if len(c.flavorIdx) != len(c.flavors) {
		return errors.New("duplicate flavor keys in catalog")
	}
	if _, exists := c.versionIdx[Latest]; exists {
		return errors.Errorf("%q is reserved as an alias and may not be a catalog key", Latest)
	}
	if _, ok := c.versionIdx[c.current]; !ok {
		return errors.Errorf("latest alias points at unknown version %q", c.current)
	}
	return nil
}
