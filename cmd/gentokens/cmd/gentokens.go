package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teranos/gentokens/tokens"
)

// GentokensCmd represents the root command
var GentokensCmd = &cobra.Command{
	Use:   "gentokens",
	Short: "Print the lexer's token and setting tables as sorted literals",
	Long: `Print the spider lexer's command tokens and setting names, sorted
ascending by byte value, as comma-separated quoted literals.

The output is meant to be pasted into the lexer's token table, where a
word's position in the sorted list is its token kind.

Output:
  validTokens:
  "bind", "exec", "set"
  validSettings:
  "terminal", "visual"

Examples:
  gentokens                 # Print both lists to stdout
  gentokens version         # Show build information`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGentokens,
}

func init() {
	GentokensCmd.AddCommand(VersionCmd)
}

func runGentokens(cmd *cobra.Command, args []string) error {
	return tokens.Run(cmd.OutOrStdout())
}
