// Copyright Emerald Youth Foundation, 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/internal/match"
	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/internal/report"
	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/internal/roster"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report which students have waivers on file, without merging",
	Long: `Status runs the roster-to-waiver match and prints the status report:
counts, the students missing waivers, and any duplicate files skipped by
the tie-break. Nothing is merged or written unless --export is given.`,
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

		summary := report.Build(res, time.Now())
		fmt.Print(summary.Render())

		format, _ := cmd.Flags().GetString("export")
		out, _ := cmd.Flags().GetString("out")
		if out == "" && format != "" {
			out = "waiver_status_report." + format
		}
		switch format {
		case "":
		case "yaml":
			if err := summary.ExportYAML(out); err != nil {
				return err
			}
			fmt.Printf("Report exported to %s\n", out)
		case "json":
			if err := summary.ExportJSON(out); err != nil {
				return err
			}
			fmt.Printf("Report exported to %s\n", out)
		default:
			return fmt.Errorf("unknown export format %q (want yaml or json)", format)
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().String("roster", "students.csv", "roster CSV file")
	statusCmd.Flags().String("waivers-dir", "waivers", "directory containing waiver PDFs")
	statusCmd.Flags().String("naming", "underscore", "waiver filename convention: underscore or consent-form")
	statusCmd.Flags().String("export", "", "also export the report: yaml or json")
	statusCmd.Flags().String("out", "", "export destination path (default waiver_status_report.<format>)")

	rootCmd.AddCommand(statusCmd)
}
