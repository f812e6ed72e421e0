package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for katex-parse.

To load completions in your current shell session:

  katex-parse completion fish | source

To load completions for every new session:

  katex-parse completion fish > ~/.config/fish/completions/katex-parse.fish`,
		Example: `  # Load in current session
  katex-parse completion fish | source

  # Install permanently
  katex-parse completion fish > ~/.config/fish/completions/katex-parse.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
