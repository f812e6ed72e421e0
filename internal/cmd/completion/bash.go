package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for katex-parse.

To load completions in your current shell session:

  source <(katex-parse completion bash)

To load completions for every new session:

  # Linux
  katex-parse completion bash > /etc/bash_completion.d/katex-parse

  # macOS (requires bash-completion)
  katex-parse completion bash > $(brew --prefix)/etc/bash_completion.d/katex-parse`,
		Example: `  # Load in current session
  source <(katex-parse completion bash)

  # Install permanently (Linux)
  katex-parse completion bash | sudo tee /etc/bash_completion.d/katex-parse > /dev/null`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
