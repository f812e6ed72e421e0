// Package docscmd provides the docs command for katex-parse.
package docscmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gglin/KaTeX/internal/docs"
	"github.com/gglin/KaTeX/registry"
)

// NewCmdDocs creates the docs command.
func NewCmdDocs() *cobra.Command {
	var html bool

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Render the function registry as documentation",
		Long: `Render the built-in function registry (name, arity, greediness,
infix/text-mode flags) as a table, in Markdown by default or HTML
with --html.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := registry.NewBuiltinFunctions()
			if html {
				out, err := docs.HTML(t)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), docs.Markdown(t))
			return nil
		},
	}

	cmd.Flags().BoolVar(&html, "html", false, "render as HTML instead of Markdown")

	return cmd
}
