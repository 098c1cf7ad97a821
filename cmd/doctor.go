package cmd

import (
	"fmt"

	"clipbridge/pkg/backend"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Show the detected environment and the backend that would be used",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		probe := svc.Probe()

		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)
		bold := color.New(color.Bold)

		yesNo := func(b bool) string {
			if b {
				return green.Sprint("yes")
			}
			return red.Sprint("no")
		}

		fmt.Println("Environment:")
		fmt.Println("============")
		fmt.Printf("OS:              %s\n", probe.GOOS)
		fmt.Printf("Wayland session: %s\n", yesNo(probe.Wayland))
		fmt.Printf("X11 display:     %s\n", yesNo(probe.X11))
		fmt.Printf("tmux session:    %s\n", yesNo(probe.Tmux))
		fmt.Printf("screen TERM:     %s\n", yesNo(probe.Screen))
		fmt.Printf("Remote (ssh):    %s\n", yesNo(probe.Remote))
		fmt.Printf("Terminal:        %s\n", yesNo(probe.Terminal))

		fmt.Println()
		fmt.Println("Clipboard tools:")
		for _, tool := range probe.Tools() {
			fmt.Printf("  %-22s %s\n", tool, yesNo(probe.HasTool(tool)))
		}

		fmt.Println()
		kind, err := svc.Selected()
		if err != nil {
			return err
		}
		bold.Printf("Selected backend: %s\n", kind)
		if kind.IsOSC52() {
			fmt.Println("(copy-only: paste will use the temp-file buffer)")
		}
		if paste := backend.ForPaste(kind); paste != kind {
			fmt.Printf("Paste backend:    %s\n", paste)
		}

		return nil
	},
}
