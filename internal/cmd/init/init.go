// Package init provides the init command for katex-parse.
package init

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/gglin/KaTeX/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize katex-parse configuration",
		Long: `Initialize katex-parse's default parsing configuration.

This command will guide you through setting the default strictness
policy and error color. The configuration will be saved to
~/.config/katex-parse/config.yml.`,
		Example: `  # Interactive setup
  katex-parse init`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return runInit(configPath)
		},
	}

	return cmd
}

func runInit(configPath string) error {
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{Strict: "warn", ErrorColor: "#cc0000"}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Strict mode").
				Description("How to react to accepted-but-suspicious input").
				Options(
					huh.NewOption("warn (default)", "warn"),
					huh.NewOption("ignore", "ignore"),
					huh.NewOption("error", "error"),
				).
				Value(&cfg.Strict),

			huh.NewInput().
				Title("Error color").
				Description("Hex color used to render unsupported commands").
				Placeholder("#cc0000").
				Value(&cfg.ErrorColor).
				Validate(func(s string) error {
					if s != "" && s[0] != '#' {
						return fmt.Errorf("must be a #-prefixed hex color")
					}
					return nil
				}),

			huh.NewConfirm().
				Title("Treat unknown commands as fatal?").
				Description("When off, unknown commands degrade gracefully into colored text").
				Value(&cfg.ThrowOnError),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println(`  katex-parse parse '\frac{1}{2}'`)
	fmt.Println("  katex-parse repl")

	return nil
}
