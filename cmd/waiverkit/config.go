// Copyright Emerald Youth Foundation, 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/pkg/types"
)

// stringSetting resolves a string option: an explicitly set flag wins,
// then the viper config/env value, then the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) || !viper.IsSet(key) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return viper.GetString(key)
}

// boolSetting resolves a bool option with the same precedence as
// stringSetting.
func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) || !viper.IsSet(key) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	return viper.GetBool(key)
}

// rosterConfig builds the roster stage config from flags and viper.
// Column overrides come from the config file only; they are too niche for
// flags.
func rosterConfig(cmd *cobra.Command) types.RosterConfig {
	return types.RosterConfig{
		Path:            stringSetting(cmd, "roster", "roster.path"),
		IDColumn:        viper.GetString("roster.id_column"),
		FirstNameColumn: viper.GetString("roster.first_name_column"),
		LastNameColumn:  viper.GetString("roster.last_name_column"),
		ConsentColumn:   viper.GetString("roster.consent_column"),
	}
}

// matchConfig builds the match stage config from flags and viper.
func matchConfig(cmd *cobra.Command) types.MatchConfig {
	return types.MatchConfig{
		WaiverDir: stringSetting(cmd, "waivers-dir", "match.waiver_dir"),
		Naming:    types.NamingScheme(stringSetting(cmd, "naming", "match.naming")),
	}
}

// storeConfig builds the store config from flags and viper.
func storeConfig(cmd *cobra.Command) types.StoreConfig {
	return types.StoreConfig{
		Path: stringSetting(cmd, "db", "store.path"),
	}
}
