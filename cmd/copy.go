package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy stdin to the clipboard",
	Long: `Read standard input to the end and place it on the clipboard using the
detected (or forced) backend. Over a remote session an OSC 52 escape
sequence is emitted as well, so the terminal emulator on the near end of
the connection picks up the copy.`,
	Example: `  # Copy a file
  clipbridge copy < notes.txt

  # Copy command output
  git log --oneline -5 | clipbridge copy

  # Copy to the PRIMARY selection
  echo middle-click me | clipbridge copy --primary`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return svc.Copy(cmd.Context(), os.Stdin)
	},
}
