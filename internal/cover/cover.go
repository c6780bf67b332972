// Copyright Emerald Youth Foundation, 2026. All rights reserved.

// Package cover renders the summary cover page prepended to the merged
// waiver document.
package cover

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/pkg/types"
)

// Params holds the figures and the student list shown on the cover page.
type Params struct {
	// Total is the full roster size.
	Total int

	// Students are the records included in the merge, in merge order.
	Students []types.Record

	// Generated is the report timestamp.
	Generated time.Time
}

// footerNote appears at the bottom of the cover page.
const footerNote = "This document contains FERPA records for students organized alphabetically by last name."

// Render writes a cover PDF to path: title, run summary, generation
// timestamp, and the alphabetical student list. The list flows onto
// additional pages when it does not fit.
func Render(p Params, path string) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(true, 54)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 28)
	pdf.CellFormat(0, 34, "Student FERPA Records", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 24, "Combined Report", "", 1, "C", false, 0, "")

	pdf.SetLineWidth(2)
	y := pdf.GetY() + 12
	pdf.Line(72, y, pageW-72, y)
	pdf.SetY(y + 24)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 18, fmt.Sprintf("Total students on roster: %d", p.Total), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 18, fmt.Sprintf("Students with waivers on file: %d", len(p.Students)), "", 1, "L", false, 0, "")
	if pending := p.Total - len(p.Students); pending > 0 {
		pdf.CellFormat(0, 18, fmt.Sprintf("Students pending waivers: %d", pending), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 18, "Generated: "+p.Generated.Format("January 2, 2006 at 3:04 PM"), "", 1, "L", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 20, "Students Included (Alphabetical by Last Name):", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for i, s := range p.Students {
		line := fmt.Sprintf("%d. %s (ID: %s)", i+1, s.DisplayName(), s.ID)
		if s.Program != "" {
			line += " - " + s.Program
		}
		pdf.CellFormat(0, 16, line, "", 1, "L", false, 0, "")
	}

	pdf.SetY(-54)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 12, footerNote, "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing cover page: %w", err)
	}
	return nil
}
