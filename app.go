package onloadimg

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/onloadimg/catalog"
	"github.com/outofforest/onloadimg/config"
	"github.com/outofforest/onloadimg/infra/docker"
)

// Validate enforces the invariants holding regardless of the selected
// action: explicit and auto-generated tags are mutually exclusive, and push
// requires execution.
func Validate(build config.Build) error {
	if build.Tag.Present && build.AutoTag.Present {
		return errors.Wrap(ErrConflictingTagSpec, "--tag and --autotag may not be combined")
	}
	if build.Push && !build.Execute {
		return errors.Wrap(ErrPushPrecondition, "--push requires --execute")
	}
	return nil
}

// GetTag resolves the tag the current configuration produces.
func GetTag(build config.Build, cat *catalog.Catalog) (string, error) {
	switch {
	case build.Tag.Present && build.AutoTag.Present:
		return "", errors.Wrap(ErrConflictingTagSpec, "--tag and --autotag may not be combined")
	case build.Tag.Present:
		return build.Tag.Value, nil
	case build.AutoTag.Present:
		version, err := ResolveVersion(build, cat)
		if err != nil {
			return "", err
		}
		flavor, err := ResolveFlavor(build, cat)
		if err != nil {
			return "", err
		}
		tag, _, err := ResolveTag(build, version, flavor)
		return tag, err
	}
	return "", errors.Wrap(ErrMissingTagSpec, "use --tag or --autotag")
}

// Build resolves the requested build into a docker invocation. Push
// preconditions are validated here so that a doomed push fails before any
// subprocess runs.
func Build(build config.Build, cat *catalog.Catalog) (docker.BuildSpec, error) {
	version, err := ResolveVersion(build, cat)
	if err != nil {
		return docker.BuildSpec{}, err
	}
	flavor, err := ResolveFlavor(build, cat)
	if err != nil {
		return docker.BuildSpec{}, err
	}
	tag, tagged, err := ResolveTag(build, version, flavor)
	if err != nil {
		return docker.BuildSpec{}, err
	}
	if build.Push {
		if !build.Execute {
			return docker.BuildSpec{}, errors.Wrap(ErrPushPrecondition, "--push requires --execute")
		}
		if !tagged {
			return docker.BuildSpec{}, errors.Wrap(ErrPushPrecondition, "--push requires a tag, use --tag or --autotag")
		}
	}

	location := build.URL
	if location == "" {
		location = version.URL
	}

	return docker.BuildSpec{
		Version:    version.Name,
		Checksum:   version.Checksum,
		Location:   location,
		WithZF:     build.ZF,
		ExtraArgs:  build.Args,
		Quiet:      build.Quiet,
		NoCache:    !build.UseCache,
		Tag:        tag,
		Tagged:     tagged,
		Dockerfile: flavor.Dockerfile(),
	}, nil
}

// Execute runs the build command and, if requested, pushes the produced tag.
// Push is attempted only after the build reports success.
func Execute(ctx context.Context, build config.Build, spec docker.BuildSpec, runner docker.Runner) error {
	log := logger.Get(ctx)
	log.Info("Building image", zap.String("version", spec.Version), zap.String("dockerfile", spec.Dockerfile))
	if err := runner.Run(ctx, spec.Args()...); err != nil {
		return errors.Wrap(err, "docker build failed")
	}
	if !build.Push {
		return nil
	}
	log.Info("Pushing image", zap.String("tag", spec.Tag))
	if err := runner.Run(ctx, docker.PushArgs(spec.Tag)...); err != nil {
		return errors.Wrap(err, "docker push failed")
	}
	return nil
}
