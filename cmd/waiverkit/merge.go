// Copyright Emerald Youth Foundation, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/internal/cover"
	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/internal/match"
	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/internal/merge"
	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/internal/report"
	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/internal/roster"
	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/internal/store"
	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/pkg/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge matched waivers into one PDF, alphabetical by last name",
	Long: `Merge runs the full pipeline: load the roster (or the imported database
with --from-db), match students to waiver PDFs, sort by last then first
name, and concatenate the documents into one output file. Invalid PDFs are
skipped and reported; with --strict the merge aborts instead when any
consenting student lacks a waiver.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mergeCfg := types.MergeConfig{
			OutputPath: stringSetting(cmd, "output", "merge.output_path"),
			Overwrite:  boolSetting(cmd, "overwrite", "merge.overwrite"),
			CoverPage:  boolSetting(cmd, "cover", "merge.cover_page"),
			Strict:     boolSetting(cmd, "strict", "merge.strict"),
		}

		fromDB, _ := cmd.Flags().GetBool("from-db")

		var res match.Result
		var mergeSet []types.Record
		if fromDB {
			st, err := store.New(storeConfig(cmd))
			if err != nil {
				return err
			}
			defer st.Close()

			all, err := st.All()
			if err != nil {
				return err
			}
			// Stored semantics: merge consenting students with waivers.
			mergeSet, err = st.MergeCandidates()
			if err != nil {
				return err
			}
			res.Records = all
			for _, r := range all {
				if r.Matched() {
					res.Matched = append(res.Matched, r)
				} else {
					res.Unmatched = append(res.Unmatched, r)
				}
			}
		} else {
			records, err := roster.Load(rosterConfig(cmd))
			if err != nil {
				return err
			}
			mcfg := matchConfig(cmd)
			keyFor, err := match.KeyFuncFor(mcfg.Naming)
			if err != nil {
				return err
			}
			res, err = match.Run(records, mcfg.WaiverDir, keyFor)
			if err != nil {
				return err
			}
			mergeSet = res.Matched
		}

		if mergeCfg.Strict {
			var missing []string
			for _, r := range res.Unmatched {
				if r.HasConsent {
					missing = append(missing, r.ID)
				}
			}
			if len(missing) > 0 {
				return fmt.Errorf("strict mode: %d consenting students have no waiver: %s",
					len(missing), strings.Join(missing, ", "))
			}
		}

		// The cover renders after validation, so skipped documents never
		// appear in its student list or counts.
		var coverFor merge.CoverFunc
		var coverTmp string
		if mergeCfg.CoverPage {
			coverFor = func(included []types.Record) (string, error) {
				tmp, err := os.CreateTemp("", "waiverkit-cover-*.pdf")
				if err != nil {
					return "", fmt.Errorf("creating cover temp file: %w", err)
				}
				tmp.Close()
				coverTmp = tmp.Name()

				params := cover.Params{
					Total:     len(res.Records),
					Students:  included,
					Generated: time.Now(),
				}
				if err := cover.Render(params, coverTmp); err != nil {
					return "", err
				}
				return coverTmp, nil
			}
			defer func() {
				if coverTmp != "" {
					os.Remove(coverTmp)
				}
			}()
		}

		mres, err := merge.Run(merge.NewEngine(), mergeSet, mergeCfg, coverFor, os.Stderr)
		if err != nil {
			return err
		}

		summary := report.Build(res, time.Now())
		fmt.Print(summary.Render())
		if mres.HasFailures() {
			fmt.Printf("Skipped during merge: %d (see log above)\n", len(mres.Skipped))
		}
		return nil
	},
}

func init() {
	mergeCmd.Flags().String("roster", "students.csv", "roster CSV file")
	mergeCmd.Flags().String("waivers-dir", "waivers", "directory containing waiver PDFs")
	mergeCmd.Flags().String("naming", "underscore", "waiver filename convention: underscore or consent-form")
	mergeCmd.Flags().String("output", "combined_waivers.pdf", "merged PDF destination")
	mergeCmd.Flags().Bool("overwrite", false, "replace the output file if it exists")
	mergeCmd.Flags().Bool("cover", false, "prepend a generated summary cover page")
	mergeCmd.Flags().Bool("strict", false, "abort when any consenting student lacks a waiver")
	mergeCmd.Flags().Bool("from-db", false, "merge from the imported database instead of the roster CSV")
	mergeCmd.Flags().String("db", "students.db", "SQLite database file (with --from-db)")

	rootCmd.AddCommand(mergeCmd)
}
