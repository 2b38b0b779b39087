// Package template provides the `swiftfw template` command group used by
// template maintainers.
package template

import (
	"github.com/spf13/cobra"

	"github.com/swiftfw/cli/internal/cmdtypes"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "template",
		Short: "Template maintenance",
		Long: `Commands for inspecting and maintaining the framework template tree.

Maintainers edit the templates as a regular Xcode project: detemplatify turns
the content tokens into plain stand-ins Xcode can open, templatify turns them
back before committing.`,
	}

	c.AddCommand(
		NewListCmd(cfg),
		NewVetCmd(cfg),
		NewTemplatifyCmd(cfg),
		NewDetemplatifyCmd(cfg),
	)

	return c
}
