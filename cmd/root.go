package cmd

import (
	"fmt"
	"os"
	"time"

	"clipbridge/pkg/backend"
	"clipbridge/pkg/bridge"
	"clipbridge/pkg/config"
	"clipbridge/pkg/detect"
	"clipbridge/pkg/errors"
	"clipbridge/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

var backendFlag string
var osc52Flag string
var primaryFlag bool
var trimFlag bool
var timeoutFlag time.Duration
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "clipbridge",
	Short: "Clipboard bridge for local, remote, and multiplexed terminals",
	Long: `clipbridge moves data between stdin/stdout and whatever clipboard the
host actually has: wl-clipboard on Wayland, xsel/xclip on X11, pbcopy on
macOS, termux-clipboard on Android, a tmux buffer, or an OSC 52 escape
sequence for remote sessions. With no subcommand it picks a direction by
itself: a terminal on stdin means paste, a pipe on stdin means copy.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set log level: explicit flag takes precedence over env var
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if envLevel := os.Getenv("CLIPBRIDGE_LOG_LEVEL"); envLevel != "" {
				level = envLevel
			}
		}
		logger.SetLevel(level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		if detect.StdinIsTerminal() {
			return svc.Paste(cmd.Context(), os.Stdout)
		}
		return svc.Copy(cmd.Context(), os.Stdin)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		bt := BuildTime
		if bt == "" {
			bt = "unknown"
		}
		gc := GitCommit
		if gc == "" {
			gc = "unknown"
		}

		fmt.Printf("clipbridge version %s\n", ver)
		fmt.Printf("Built: %s\n", bt)
		fmt.Printf("Git commit: %s\n", gc)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

// loadConfig loads the config file and folds the command-line flags over it.
// Precedence ends up flag > environment > file > default.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("osc52") {
		if err := cfg.Set("osc52", osc52Flag); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("primary") {
		cfg.Primary = primaryFlag
	}
	if cmd.Flags().Changed("trim") {
		cfg.Trim = trimFlag
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = timeoutFlag
	}
	return cfg, nil
}

func newService(cmd *cobra.Command) (*bridge.Service, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	probe := detect.New()
	return bridge.New(cfg, probe, backendFlag), nil
}

func init() {
	RegisterCommands(rootCmd)

	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Force a clipboard backend instead of auto-detecting")
	rootCmd.PersistentFlags().StringVar(&osc52Flag, "osc52", config.OSC52Auto, "OSC 52 escape emission (auto, always, never)")
	rootCmd.PersistentFlags().BoolVar(&primaryFlag, "primary", false, "Use the PRIMARY selection where the tool supports it")
	rootCmd.PersistentFlags().BoolVar(&trimFlag, "trim", false, "Strip one trailing newline when pasting")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", config.DefaultTimeout, "Timeout for external clipboard tools (e.g., 10s, 1m)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, fatal, panic)")

	rootCmd.RegisterFlagCompletionFunc("backend", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return backend.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.RegisterFlagCompletionFunc("osc52", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OSC52Auto, config.OSC52Always, config.OSC52Never}, cobra.ShellCompDirectiveNoFileComp
	})
}
