package commands

import (
	"github.com/spf13/cobra"

	"github.com/outofforest/ioc/v2"
	"github.com/outofforest/logger"
	"github.com/outofforest/onloadimg/config"
)

// NewCmdFactory returns new CmdFactory.
func NewCmdFactory(c *ioc.Container) *CmdFactory {
	return &CmdFactory{
		c: c,
	}
}

// CmdFactory is a wrapper around cobra RunE.
type CmdFactory struct {
	c *ioc.Container
}

// Cmd returns function compatible with RunE.
func (f *CmdFactory) Cmd(setupFunc interface{}, cmdFunc interface{}) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if setupFunc != nil {
			f.c.Call(setupFunc)
		}
		f.c.Resolve(func(logging config.Logging) {
			if !logging.Verbose {
				logger.VerboseOff()
			}
		})
		var err error
		f.c.Call(cmdFunc, &err)
		return err
	}
}
