// Copyright Emerald Youth Foundation, 2026. All rights reserved.

// Package main is the entry point for the waiverkit CLI: roster import,
// waiver matching, merged report generation, and status listing for FERPA
// consent records.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the waiverkit CLI.
var rootCmd = &cobra.Command{
	Use:   "waiverkit",
	Short: "FERPA consent roster and waiver merge toolkit",
	Long: `waiverkit tracks student FERPA consent records and produces merged PDF
reports. It loads a roster table, matches each student to a waiver PDF by
filename identifier prefix, merges the matched documents alphabetically by
last name, and reports which students are missing waivers.

Each stage is a subcommand: import loads the roster into the local
database, status reports matches without merging, merge produces the
combined PDF, and list queries the database.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./waiverkit.yaml or ~/.config/waiverkit/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("waiverkit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "waiverkit"))
		}
	}

	viper.SetEnvPrefix("WAIVERKIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
