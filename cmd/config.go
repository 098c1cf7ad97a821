package cmd

import (
	"fmt"

	"clipbridge/pkg/config"
	"clipbridge/pkg/errors"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage clipbridge configuration",
	Long:  `Inspect and edit the clipbridge configuration file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective configuration after environment overrides.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		fmt.Println("Current Configuration:")
		fmt.Println("======================")
		fmt.Printf("Backend: %s\n", func() string {
			if cfg.Backend == "" {
				return "(auto)"
			}
			return cfg.Backend
		}())
		fmt.Printf("OSC 52: %s\n", cfg.OSC52)
		fmt.Printf("Primary selection: %t\n", cfg.Primary)
		fmt.Printf("Trim trailing newline: %t\n", cfg.Trim)
		fmt.Printf("Tool timeout: %s\n", cfg.Timeout)
		fmt.Printf("Buffer path: %s\n", func() string {
			if cfg.BufferPath == "" {
				return "(default)"
			}
			return cfg.BufferPath
		}())

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  `Set a configuration key and write the config file.`,
	Example: `  clipbridge config set backend xclip
  clipbridge config set osc52 always
  clipbridge config set timeout 30s`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Printf("Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
		}
		fmt.Println(path)
		return nil
	},
}
