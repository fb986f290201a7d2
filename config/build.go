package config

import (
	"github.com/spf13/pflag"
)

// Action selects what a single invocation does.
type Action string

// Actions the tool dispatches on. The last action-selecting flag given on
// the command line wins.
const (
	ActionNone     Action = ""
	ActionVersions Action = "versions"
	ActionFlavors  Action = "flavors"
	ActionGetTag   Action = "gettag"
	ActionBuild    Action = "build"
)

// Optional is a flag value whose presence is meaningful independently of the
// value, so that an unset flag is distinguishable from one given with an
// empty value.
type Optional struct {
	// Value is the argument given to the flag
	Value string

	// Present reports whether the flag occurred at all
	Present bool
}

// BuildFactory collects data for build config.
type BuildFactory struct {
	// Action is the last action-selecting flag seen
	Action Action

	// Version is the requested onload release
	Version string

	// Flavor is the requested OS flavor
	Flavor string

	// URL overrides the release package location
	URL string

	// Tag is the explicit image tag
	Tag Optional

	// AutoTag holds the auto-generated tag prefix
	AutoTag Optional

	// ZF includes the zf acceleration library in the image
	ZF bool

	// Args are extra build-time arguments, order preserved
	Args []string

	// Quiet runs the build quietly
	Quiet bool

	// NoCache disables the docker layer cache
	NoCache bool

	// Execute runs the build command instead of only printing it
	Execute bool

	// Push pushes the tagged image after a successful build
	Push bool

	// Verbosity counts the -v flags given
	Verbosity int
}

// AddFlags registers the full CLI surface on the flag set.
func (f *BuildFactory) AddFlags(flags *pflag.FlagSet) {
	addActionFlag(flags, "versions",
		"List known onload releases and exit", &actionValue{f: f, action: ActionVersions})
	addActionFlag(flags, "flavors",
		"List known OS flavors and exit", &actionValue{f: f, action: ActionFlavors})
	addActionFlag(flags, "build",
		"Print the docker build command for the selected release and flavor", &actionValue{f: f, action: ActionBuild})
	gettag := flags.VarPF(&gettagValue{f: f}, "gettag", "",
		"Print the tag the current options resolve to, optionally seeding the auto-tag prefix")
	gettag.NoOptDefVal = presentNoValue

	flags.VarP(&onceValue{dst: &f.Version}, "onload", "o",
		"Onload release to build, 'latest' if not given; may be given at most once")
	flags.VarP(&onceValue{dst: &f.Flavor}, "flavor", "f",
		"OS flavor to build for; may be given at most once")
	flags.StringVarP(&f.URL, "url", "u", "",
		"Override the release package location")
	flags.VarP(&optionalValue{dst: &f.Tag}, "tag", "t",
		"Tag the built image with an explicit tag")
	autotag := flags.VarPF(&optionalValue{dst: &f.AutoTag}, "autotag", "a",
		"Tag the built image with <prefix><version>-<flavor>, '-nozf' appended unless zf is enabled")
	autotag.NoOptDefVal = presentNoValue
	zf := flags.VarPF(&truthyValue{dst: &f.ZF}, "zf", "",
		"Include the zf acceleration library, --zf=0 or --zf=false disables")
	zf.NoOptDefVal = "true"
	flags.StringArrayVar(&f.Args, "arg", nil,
		"Extra build-time argument passed to docker build verbatim, may be repeated")
	flags.BoolVarP(&f.Quiet, "quiet", "q", false,
		"Run the build quietly")
	flags.BoolVar(&f.NoCache, "no-cache", false,
		"Build without the docker layer cache")
	execute := flags.VarPF(&executeValue{f: f}, "execute", "x",
		"Execute the build command instead of only printing it")
	execute.NoOptDefVal = "true"
	flags.BoolVarP(&f.Push, "push", "p", false,
		"Push the tagged image after a successful build, requires --execute and a tag")
	flags.CountVarP(&f.Verbosity, "verbose", "v",
		"Increase output verbosity")
}

func addActionFlag(flags *pflag.FlagSet, name, usage string, value pflag.Value) {
	flag := flags.VarPF(value, name, "", usage)
	flag.NoOptDefVal = "true"
}

// Config creates build config.
func (f *BuildFactory) Config() Build {
	return Build{
		Action:    f.Action,
		Version:   f.Version,
		Flavor:    f.Flavor,
		URL:       f.URL,
		Tag:       f.Tag,
		AutoTag:   f.AutoTag,
		ZF:        f.ZF,
		Args:      append([]string(nil), f.Args...),
		Quiet:     f.Quiet,
		UseCache:  !f.NoCache,
		Execute:   f.Execute,
		Push:      f.Push,
		Verbosity: f.Verbosity,
	}
}

// Build stores the configuration of a single invocation.
type Build struct {
	// Action is the selected action
	Action Action

	// Version is the requested onload release, empty means latest
	Version string

	// Flavor is the requested OS flavor
	Flavor string

	// URL overrides the release package location
	URL string

	// Tag is the explicit image tag
	Tag Optional

	// AutoTag holds the auto-generated tag prefix
	AutoTag Optional

	// ZF includes the zf acceleration library in the image
	ZF bool

	// Args are extra build-time arguments, order preserved
	Args []string

	// Quiet runs the build quietly
	Quiet bool

	// UseCache keeps the docker layer cache enabled
	UseCache bool

	// Execute runs the build command instead of only printing it
	Execute bool

	// Push pushes the tagged image after a successful build
	Push bool

	// Verbosity counts the -v flags given
	Verbosity int
}
