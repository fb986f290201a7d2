package onloadimg

import (
	"github.com/pkg/errors"

	"github.com/outofforest/onloadimg/catalog"
	"github.com/outofforest/onloadimg/config"
)

// ResolveVersion resolves the requested release against the catalog,
// defaulting to the latest alias.
func ResolveVersion(build config.Build, cat *catalog.Catalog) (catalog.VersionEntry, error) {
	name := build.Version
	if name == "" {
		name = catalog.Latest
	}
	entry, ok := cat.Version(name)
	if !ok {
		return catalog.VersionEntry{}, errors.Wrapf(ErrUnknownVersion,
			"%q is not in the version catalog, run with --versions to list known releases", name)
	}
	return entry, nil
}

// ResolveFlavor resolves the requested flavor against the catalog. The
// flavor is mandatory, absence and an unknown value are distinct failures.
func ResolveFlavor(build config.Build, cat *catalog.Catalog) (catalog.FlavorEntry, error) {
	if build.Flavor == "" {
		return catalog.FlavorEntry{}, errors.Wrap(ErrMissingFlavor,
			"use --flavor, run with --flavors to list known flavors")
	}
	entry, ok := cat.Flavor(build.Flavor)
	if !ok {
		return catalog.FlavorEntry{}, errors.Wrapf(ErrUnknownFlavor,
			"%q is not in the flavor catalog, run with --flavors to list known flavors", build.Flavor)
	}
	return entry, nil
}

// ResolveTag resolves the tag of the build. An explicit tag is returned
// verbatim, an auto-generated one composes prefix, version and flavor with
// '-nozf' appended unless zf is enabled. No tag at all is a valid outcome
// reported through the second return value.
func ResolveTag(build config.Build, version catalog.VersionEntry, flavor catalog.FlavorEntry) (string, bool, error) {
	switch {
	case build.Tag.Present && build.AutoTag.Present:
		return "", false, errors.Wrap(ErrConflictingTagSpec, "--tag and --autotag may not be combined")
	case build.Tag.Present:
		return build.Tag.Value, true, nil
	case build.AutoTag.Present:
		tag := build.AutoTag.Value + version.Name + "-" + flavor.Name
		if !build.ZF {
			tag += "-nozf"
		}
		return tag, true, nil
	}
	return "", false, nil
}
