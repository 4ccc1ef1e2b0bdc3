package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/gentokens/errors"
	"github.com/teranos/gentokens/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show gentokens version information",
	Long:  `Display version, build time, commit hash, and platform information for the gentokens binary.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		out := cmd.OutOrStdout()

		info := version.Get()

		if jsonOutput {
			output, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to format version as JSON")
			}
			_, err = fmt.Fprintln(out, string(output))
			return errors.WrapWrite(err, "failed to write version")
		}

		_, err := fmt.Fprintf(out, "%s\nPlatform: %s\nGo: %s\n", info.String(), info.Platform, info.GoVersion)
		return errors.WrapWrite(err, "failed to write version")
	},
}

func init() {
	VersionCmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
}
