package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Write the clipboard to stdout",
	Long: `Read the clipboard through the detected (or forced) backend and write
the raw bytes to standard output. OSC 52 cannot be read back, so on hosts
where it is the copy mechanism paste serves the temp-file mirror instead.`,
	Example: `  # Paste into a file
  clipbridge paste > notes.txt

  # Paste without the trailing newline
  clipbridge paste --trim`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return svc.Paste(cmd.Context(), os.Stdout)
	},
}
