// Package root provides the root command for katex-parse.
package root

import (
	"github.com/spf13/cobra"

	"github.com/gglin/KaTeX/internal/cmd/completion"
	"github.com/gglin/KaTeX/internal/cmd/docscmd"
	initcmd "github.com/gglin/KaTeX/internal/cmd/init"
	"github.com/gglin/KaTeX/internal/cmd/parsecmd"
	"github.com/gglin/KaTeX/internal/cmd/replcmd"
	"github.com/gglin/KaTeX/internal/version"
)

// NewCmdRoot creates the root command for katex-parse.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "katex-parse",
		Short: "Parse LaTeX math and text into an abstract syntax tree",
		Long: `katex-parse is a command-line front end for a KaTeX-style
recursive-descent LaTeX parser.

It tokenizes and parses LaTeX source into an AST without rendering it:
useful for inspecting how a given input is structured, or for
exercising the parser's function registry, infix rewriting, accent
folding, and argument grammars.

Get started by running: katex-parse parse '\frac{1}{2}'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/katex-parse/config.yml)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().Bool("throw-on-error", false, "treat unknown commands as fatal parse errors")
	cmd.PersistentFlags().String("strict", "", "strict mode: ignore, warn, error")

	cmd.SetVersionTemplate("katex-parse version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	cmd.AddCommand(parsecmd.NewCmdParse())
	cmd.AddCommand(replcmd.NewCmdRepl())
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(docscmd.NewCmdDocs())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
