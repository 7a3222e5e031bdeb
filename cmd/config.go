package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/mmhamza1234/procurement/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set procure configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("buffer_days: %d\n", cfg.BufferDays)
		if cfg.Roster != "" {
			fmt.Printf("roster: %s\n", cfg.Roster)
		}
		if cfg.Patterns != "" {
			fmt.Printf("patterns: %s\n", cfg.Patterns)
		}
		if cfg.Signature != "" {
			fmt.Printf("signature: %s\n", cfg.Signature)
		}
		fmt.Printf("quiet: %t\n", cfg.Quiet)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch args[0] {
		case "buffer_days":
			fmt.Println(cfg.BufferDays)
		case "roster":
			fmt.Println(cfg.Roster)
		case "patterns":
			fmt.Println(cfg.Patterns)
		case "signature":
			fmt.Println(cfg.Signature)
		case "quiet":
			fmt.Println(cfg.Quiet)
		default:
			return fmt.Errorf("unknown key: %s", args[0])
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "buffer_days":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for buffer_days: %v", val)
			}
			cfg.BufferDays = i
		case "roster":
			cfg.Roster = val
		case "patterns":
			cfg.Patterns = val
		case "signature":
			cfg.Signature = val
		case "quiet":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for quiet: %v", val)
			}
			cfg.Quiet = b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
