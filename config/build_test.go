package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (Build, error) {
	t.Helper()
	f := &BuildFactory{}
	flags := pflag.NewFlagSet("onloadimg", pflag.ContinueOnError)
	f.AddFlags(flags)
	if err := flags.Parse(args); err != nil {
		return Build{}, err
	}
	return f.Config(), nil
}

func TestLastActionFlagWins(t *testing.T) {
	for _, tc := range []struct {
		args   []string
		action Action
	}{
		{args: []string{"--versions"}, action: ActionVersions},
		{args: []string{"--flavors"}, action: ActionFlavors},
		{args: []string{"--build"}, action: ActionBuild},
		{args: []string{"--gettag"}, action: ActionGetTag},
		{args: []string{"--versions", "--build"}, action: ActionBuild},
		{args: []string{"--build", "--flavors"}, action: ActionFlavors},
		{args: []string{"--gettag", "--versions", "--flavors"}, action: ActionFlavors},
		{args: []string{}, action: ActionNone},
	} {
		build, err := parse(t, tc.args...)
		require.NoError(t, err)
		assert.Equal(t, tc.action, build.Action, "args: %v", tc.args)
	}
}

func TestExecuteSelectsBuildAction(t *testing.T) {
	build, err := parse(t, "-x")
	require.NoError(t, err)
	assert.Equal(t, ActionBuild, build.Action)
	assert.True(t, build.Execute)

	build, err = parse(t, "--versions", "--execute")
	require.NoError(t, err)
	assert.Equal(t, ActionBuild, build.Action)
}

func TestVersionGivenTwiceFails(t *testing.T) {
	_, err := parse(t, "-o", "8.0.2.51", "--onload", "7.1.3.202")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--onload")
	assert.Contains(t, err.Error(), "at most once")
}

func TestFlavorGivenTwiceFails(t *testing.T) {
	_, err := parse(t, "--flavor", "bionic", "-f", "focal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--flavor")
}

func TestVersionAndFlavorSelectors(t *testing.T) {
	build, err := parse(t, "-o", "8.0.2.51", "-f", "bionic")
	require.NoError(t, err)
	assert.Equal(t, "8.0.2.51", build.Version)
	assert.Equal(t, "bionic", build.Flavor)
}

func TestZFTruthyParsing(t *testing.T) {
	for _, tc := range []struct {
		args    []string
		enabled bool
	}{
		{args: []string{}, enabled: false},
		{args: []string{"--zf"}, enabled: true},
		{args: []string{"--zf=1"}, enabled: true},
		{args: []string{"--zf=true"}, enabled: true},
		{args: []string{"--zf=yes"}, enabled: true},
		{args: []string{"--zf=0"}, enabled: false},
		{args: []string{"--zf=false"}, enabled: false},
		{args: []string{"--zf=FALSE"}, enabled: false},
		{args: []string{"--zf=False"}, enabled: false},
	} {
		build, err := parse(t, tc.args...)
		require.NoError(t, err)
		assert.Equal(t, tc.enabled, build.ZF, "args: %v", tc.args)
	}
}

func TestAutoTagTriState(t *testing.T) {
	build, err := parse(t)
	require.NoError(t, err)
	assert.False(t, build.AutoTag.Present)

	build, err = parse(t, "--autotag")
	require.NoError(t, err)
	assert.True(t, build.AutoTag.Present)
	assert.Equal(t, "", build.AutoTag.Value)

	build, err = parse(t, "-a")
	require.NoError(t, err)
	assert.True(t, build.AutoTag.Present)
	assert.Equal(t, "", build.AutoTag.Value)

	build, err = parse(t, "--autotag=rel:")
	require.NoError(t, err)
	assert.True(t, build.AutoTag.Present)
	assert.Equal(t, "rel:", build.AutoTag.Value)
}

func TestExplicitTagRequiresValue(t *testing.T) {
	_, err := parse(t, "--tag")
	require.Error(t, err)

	build, err := parse(t, "--tag", "custom")
	require.NoError(t, err)
	assert.True(t, build.Tag.Present)
	assert.Equal(t, "custom", build.Tag.Value)
}

func TestGetTagSeedsAutoTagPrefix(t *testing.T) {
	build, err := parse(t, "--gettag=rel:")
	require.NoError(t, err)
	assert.Equal(t, ActionGetTag, build.Action)
	assert.True(t, build.AutoTag.Present)
	assert.Equal(t, "rel:", build.AutoTag.Value)

	// bare gettag seeds nothing
	build, err = parse(t, "--gettag")
	require.NoError(t, err)
	assert.False(t, build.AutoTag.Present)

	// an autotag prefix given explicitly is not overwritten
	build, err = parse(t, "--autotag=a:", "--gettag=b:")
	require.NoError(t, err)
	assert.Equal(t, "a:", build.AutoTag.Value)
}

func TestExtraArgsPreserveOrder(t *testing.T) {
	build, err := parse(t, "--arg", "A=1", "--arg", "B=2", "--arg", "C=3")
	require.NoError(t, err)
	assert.Equal(t, []string{"A=1", "B=2", "C=3"}, build.Args)
}

func TestVerbosityCounts(t *testing.T) {
	build, err := parse(t, "-vv", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, 3, build.Verbosity)
}

func TestCacheEnabledByDefault(t *testing.T) {
	build, err := parse(t)
	require.NoError(t, err)
	assert.True(t, build.UseCache)

	build, err = parse(t, "--no-cache")
	require.NoError(t, err)
	assert.False(t, build.UseCache)
}

func TestUnknownFlagFails(t *testing.T) {
	_, err := parse(t, "--bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestBooleanFlags(t *testing.T) {
	build, err := parse(t, "-q", "-p", "-x")
	require.NoError(t, err)
	assert.True(t, build.Quiet)
	assert.True(t, build.Push)
	assert.True(t, build.Execute)
}
