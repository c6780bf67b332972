// Copyright Emerald Youth Foundation, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/internal/match"
	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/internal/roster"
	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load the roster, match waivers, and import into the database",
	Long: `Import reads the roster CSV, matches each student to a waiver PDF in the
waiver directory, and replaces the contents of the local SQLite database
with the matched roster. Rerun it whenever the roster or the waiver folder
changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := roster.Load(rosterConfig(cmd))
		if err != nil {
			return err
		}

		mcfg := matchConfig(cmd)
		keyFor, err := match.KeyFuncFor(mcfg.Naming)
		if err != nil {
			return err
		}
		res, err := match.Run(records, mcfg.WaiverDir, keyFor)
		if err != nil {
			return err
		}

		for _, r := range res.Matched {
			fmt.Fprintf(os.Stderr, "matched: %s (%s)\n", r.ID, r.DisplayName())
		}
		for _, r := range res.Unmatched {
			fmt.Fprintf(os.Stderr, "no waiver: %s (%s)\n", r.ID, r.DisplayName())
		}

		st, err := store.New(storeConfig(cmd))
		if err != nil {
			return err
		}
		defer st.Close()

		sum, err := st.Import(res.Records)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d students (%d with consent, %d with waivers, %d duplicates skipped)\n",
			sum.Imported, sum.WithConsent, sum.WithWaiver, len(res.Duplicates))
		return nil
	},
}

func init() {
	importCmd.Flags().String("roster", "students.csv", "roster CSV file")
	importCmd.Flags().String("waivers-dir", "waivers", "directory containing waiver PDFs")
	importCmd.Flags().String("naming", "underscore", "waiver filename convention: underscore or consent-form")
	importCmd.Flags().String("db", "students.db", "SQLite database file")

	rootCmd.AddCommand(importCmd)
}
