package commands

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/outofforest/ioc/v2"
	"github.com/outofforest/onloadimg"
	"github.com/outofforest/onloadimg/catalog"
	"github.com/outofforest/onloadimg/config"
	"github.com/outofforest/onloadimg/infra/docker"
	"github.com/outofforest/onloadimg/infra/format"
)

// NewRootCommand returns the root command carrying the whole CLI surface.
func NewRootCommand(cmdF *CmdFactory) *cobra.Command {
	buildF := &config.BuildFactory{}

	cmd := &cobra.Command{
		Short:         "Generates docker build invocations for onload-accelerated container images",
		Use:           "onloadimg [flags]",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: cmdF.Cmd(func(c *ioc.Container) {
			c.Singleton(buildF.Config)
			c.Singleton(config.NewLogging)
			c.Singleton(config.NewFormat)
		}, dispatch),
	}
	buildF.AddFlags(cmd.Flags())
	return cmd
}

func dispatch(
	ctx context.Context,
	c *ioc.Container,
	build config.Build,
	cat *catalog.Catalog,
	formatter format.Formatter,
	runner docker.Runner,
) error {
	if err := onloadimg.Validate(build); err != nil {
		return err
	}
	switch build.Action {
	case config.ActionVersions:
		fmt.Println(formatter.Format(cat.Versions()))
	case config.ActionFlavors:
		fmt.Println(format.Resolve(c, config.Format{Formatter: config.FormatterTerse}).Format(cat.Flavors()))
	case config.ActionGetTag:
		tag, err := onloadimg.GetTag(build, cat)
		if err != nil {
			return err
		}
		fmt.Println(tag)
	case config.ActionBuild:
		spec, err := onloadimg.Build(build, cat)
		if err != nil {
			return err
		}
		fmt.Println(spec.Command())
		if build.Execute {
			return onloadimg.Execute(ctx, build, spec, runner)
		}
	default:
		return errors.Wrap(onloadimg.ErrNoAction, "run with --help to see available actions")
	}
	return nil
}
