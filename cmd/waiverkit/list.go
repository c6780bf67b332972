// Copyright Emerald Youth Foundation, 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported students and their waiver status",
	Long: `List prints the students in the imported database, alphabetical by last
name. With --missing it shows only consenting students without a waiver on
file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.New(storeConfig(cmd))
		if err != nil {
			return err
		}
		defer st.Close()

		missingOnly, _ := cmd.Flags().GetBool("missing")

		records, err := st.All()
		if err != nil {
			return err
		}
		if missingOnly {
			records, err = st.MissingWaivers()
			if err != nil {
				return err
			}
		}

		if len(records) == 0 {
			fmt.Println("No students found. Run 'waiverkit import' first.")
			return nil
		}

		for _, r := range records {
			status := "missing"
			if r.Matched() {
				status = "on file"
			}
			fmt.Printf("%-10s %-30s waiver: %s\n", r.ID, r.DisplayName(), status)
		}
		fmt.Printf("\n%d students listed\n", len(records))
		return nil
	},
}

func init() {
	listCmd.Flags().String("db", "students.db", "SQLite database file")
	listCmd.Flags().Bool("missing", false, "show only consenting students without a waiver")

	rootCmd.AddCommand(listCmd)
}
