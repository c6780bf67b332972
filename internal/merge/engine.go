// Copyright Emerald Youth Foundation, 2026. All rights reserved.

package merge

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Engine provides the page-level PDF primitives the merge stage needs.
// The production backend is pdfcpu; tests substitute a fake.
type Engine interface {
	// Validate reports whether the file parses as a well-formed PDF.
	Validate(path string) error

	// PageCount returns the number of pages in the document.
	PageCount(path string) (int, error)

	// Merge concatenates inFiles, in order, into outPath. Page order
	// within each input document is preserved.
	Merge(inFiles []string, outPath string) error
}

// PDFCPU is the pdfcpu-backed Engine.
type PDFCPU struct{}

// NewEngine returns the production merge engine.
func NewEngine() Engine {
	return PDFCPU{}
}

func (PDFCPU) Validate(path string) error {
	return api.ValidateFile(path, nil)
}

func (PDFCPU) PageCount(path string) (int, error) {
	return api.PageCountFile(path)
}

func (PDFCPU) Merge(inFiles []string, outPath string) error {
	return api.MergeCreateFile(inFiles, outPath, nil)
}
