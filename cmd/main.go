package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/outofforest/ioc/v2"
	"github.com/outofforest/onloadimg/catalog"
	"github.com/outofforest/onloadimg/commands"
	"github.com/outofforest/onloadimg/infra/docker"
	"github.com/outofforest/onloadimg/infra/format"
	"github.com/outofforest/run"
)

func iocBuilder(c *ioc.Container) {
	c.Singleton(commands.NewCmdFactory)
	c.Singleton(catalog.New)
	c.Singleton(docker.NewRunner)

	c.Singleton(format.Resolve)
	c.SingletonNamed("terse", format.NewTerseFormatter)
	c.SingletonNamed("table", format.NewTableFormatter)

	c.Singleton(commands.NewRootCommand)
}

func main() {
	run.Tool("onloadimg", iocBuilder, func(ctx context.Context, rootCmd *cobra.Command) error {
		return rootCmd.Execute()
	})
}
