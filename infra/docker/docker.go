package docker

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/outofforest/libexec"
)

// Build-time arguments consumed by the build definition files.
const (
	argVersion  = "ONLOAD_VERSION"
	argChecksum = "ONLOAD_MD5SUM"
	argLocation = "ONLOAD_LOCATION"
	argWithZF   = "ONLOAD_WITHZF"
)

// BuildSpec is a fully resolved docker build invocation.
type BuildSpec struct {
	// Version is the onload release version string
	Version string

	// Checksum is the md5 sum of the release package
	Checksum string

	// Location is where the release package comes from, empty means the
	// legacy source configured in the build definition
	Location string

	// WithZF includes the zf acceleration library in the image
	WithZF bool

	// ExtraArgs are user-supplied build-time arguments, order preserved
	ExtraArgs []string

	// Quiet runs the build quietly
	Quiet bool

	// NoCache disables the docker layer cache
	NoCache bool

	// Tag is the tag assigned to the image
	Tag string

	// Tagged reports whether a tag was resolved at all
	Tagged bool

	// Dockerfile is the flavor-specific build definition file
	Dockerfile string
}

// Args returns the docker argument vector of the build. The order is fixed:
// version and checksum first, then the package location (always present,
// possibly empty), the zf switch, extra arguments, build options, the tag,
// and finally the build definition file with the current build context.
func (s BuildSpec) Args() []string {
	args := []string{
		"build",
		"--build-arg", argVersion + "=" + s.Version,
		"--build-arg", argChecksum + "=" + s.Checksum,
		"--build-arg", argLocation + "=" + s.Location,
	}
	if s.WithZF {
		args = append(args, "--build-arg", argWithZF+"=1")
	}
	for _, a := range s.ExtraArgs {
		args = append(args, "--build-arg", a)
	}
	if s.Quiet {
		args = append(args, "--quiet")
	}
	if s.NoCache {
		args = append(args, "--no-cache")
	}
	if s.Tagged {
		args = append(args, "-t", s.Tag)
	}
	return append(args, "-f", s.Dockerfile, ".")
}

// Command returns the invocation as a printable command line. Values are not
// shell-escaped, arguments containing shell metacharacters are the caller's
// responsibility.
func (s BuildSpec) Command() string {
	return command(s.Args())
}

// PushArgs returns the docker argument vector pushing the tag to its registry.
func PushArgs(tag string) []string {
	return []string{"push", tag}
}

// PushCommand returns the push invocation as a printable command line.
func PushCommand(tag string) string {
	return command(PushArgs(tag))
}

func command(args []string) string {
	return strings.Join(append([]string{"docker"}, args...), " ")
}

// Runner executes docker invocations.
type Runner interface {
	// Run runs the docker binary with the given arguments
	Run(ctx context.Context, args ...string) error
}

// NewRunner returns a runner shelling out to the docker binary.
func NewRunner() Runner {
	return &execRunner{}
}

type execRunner struct {
}

func (r *execRunner) Run(ctx context.Context, args ...string) error {
	cmd := exec.Command("docker", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return libexec.Exec(ctx, cmd)
}
