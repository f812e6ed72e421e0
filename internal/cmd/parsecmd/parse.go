// Package parsecmd provides the parse command for katex-parse.
package parsecmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gglin/KaTeX/ast"
	"github.com/gglin/KaTeX/internal/astprint"
	"github.com/gglin/KaTeX/internal/config"
	"github.com/gglin/KaTeX/internal/diag"
	"github.com/gglin/KaTeX/internal/engine"
	"github.com/gglin/KaTeX/parser"
)

type parseOptions struct {
	textMode   bool
	noColor    bool
	strict     string
	throw      bool
	stats      bool
	configPath string
	output     string
}

// jsonResult is the --output json envelope: the parsed tree plus any
// non-strict diagnostics collected along the way, instead of the
// colorized terminal rendering.
type jsonResult struct {
	Nodes       []ast.Node        `json:"nodes"`
	Diagnostics []diag.Diagnostic `json:"diagnostics,omitempty"`
}

// jsonError is the --output json envelope for a fatal parse error.
type jsonError struct {
	Error *parser.ParseError `json:"error"`
}

// NewCmdParse creates the parse command.
func NewCmdParse() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [expression]",
		Short: "Parse a LaTeX expression and print its AST",
		Long: `Parse one LaTeX expression (math mode by default) and print the
resulting abstract syntax tree as an indented text dump.

If no expression argument is given, parse reads it from stdin.`,
		Example: `  katex-parse parse '\frac{1}{2}'
  katex-parse parse --text 'a--b'
  echo '{1 \over 2}' | katex-parse parse`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.strict, _ = cmd.Flags().GetString("strict")
			opts.throw, _ = cmd.Flags().GetBool("throw-on-error")
			opts.configPath, _ = cmd.Flags().GetString("config")
			if opts.output != "text" && opts.output != "json" {
				return fmt.Errorf("--output must be %q or %q (got %q)", "text", "json", opts.output)
			}

			var src string
			if len(args) == 1 {
				src = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				src = strings.TrimRight(string(data), "\n")
				if src == "" {
					return fmt.Errorf("no expression given and stdin is empty")
				}
			}

			return runParse(cmd, src, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.textMode, "text", false, "start in text mode instead of math mode")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print a one-line input/output size summary to stderr")
	cmd.Flags().StringVar(&opts.output, "output", "text", "output format: text or json")

	return cmd
}

func runParse(cmd *cobra.Command, src string, opts *parseOptions) error {
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cfg, _ := config.LoadWithEnv(configPath)
	if opts.strict != "" {
		cfg.Strict = opts.strict
	}
	if opts.throw {
		cfg.ThrowOnError = true
	}
	if opts.noColor {
		cfg.NoColor = true
	}

	settings := cfg.ToSettings()

	var collector *diag.Collector
	renderer := diag.NewRenderer(cfg.NoColor)
	renderer.SetWriter(cmd.ErrOrStderr())
	if opts.output == "json" {
		collector = &diag.Collector{}
		settings.ReportNonstrict = collector.ReportNonstrict
	} else {
		settings.ReportNonstrict = renderer.ReportNonstrict
	}

	if opts.textMode {
		src = `\text{` + src + `}`
	}

	nodes, err := engine.Parse(src, settings)
	if err != nil {
		pe, isParseError := err.(*parser.ParseError)
		if opts.output == "json" {
			if !isParseError {
				pe = &parser.ParseError{Message: err.Error()}
			}
			enc, encErr := json.MarshalIndent(jsonError{Error: pe}, "", "  ")
			if encErr == nil {
				fmt.Fprintln(cmd.OutOrStdout(), string(enc))
			}
		} else {
			renderer.Error(err)
		}
		if isParseError {
			return pe
		}
		return err
	}

	var rendered string
	if opts.output == "json" {
		enc, encErr := json.MarshalIndent(jsonResult{Nodes: nodes, Diagnostics: collector.Diagnostics}, "", "  ")
		if encErr != nil {
			return fmt.Errorf("marshaling JSON output: %w", encErr)
		}
		rendered = string(enc) + "\n"
	} else {
		rendered = astprint.Print(nodes)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)

	if opts.stats {
		fmt.Fprintf(cmd.ErrOrStderr(), "parsed %s of input into %s of tree output, %d top-level node(s)\n",
			humanize.Bytes(uint64(len(src))), humanize.Bytes(uint64(len(rendered))), len(nodes))
	}

	return nil
}
