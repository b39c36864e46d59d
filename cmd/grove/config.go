package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/banana-grove/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration the way play does (--config, then
~/.grove/configs/grove.yaml, then ./configs/grove.yaml, then the built-in
default), apply --difficulty and print the result as YAML.

The output is a valid config file:
  grove config --difficulty hard > ~/.grove/configs/grove.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	data, err := config.MarshalGrove(cfg)
	if err != nil {
		fail("%v", err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
