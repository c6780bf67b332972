// Copyright Emerald Youth Foundation, 2026. All rights reserved.

package merge

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andlrutt/Emerald-Youth-Hack-for-Nonprofits/pkg/types"
)

// fakeEngine implements Engine for testing. It records the merge call and
// can be configured to fail validation for specific paths.
type fakeEngine struct {
	invalid map[string]error // path -> validation error
	pages   map[string]int   // path -> page count (default 1)

	mergedIn  []string
	mergedOut string
	called    bool
}

func (f *fakeEngine) Validate(path string) error {
	if err, ok := f.invalid[path]; ok {
		return err
	}
	return nil
}

func (f *fakeEngine) PageCount(path string) (int, error) {
	if n, ok := f.pages[path]; ok {
		return n, nil
	}
	return 1, nil
}

func (f *fakeEngine) Merge(inFiles []string, outPath string) error {
	f.called = true
	f.mergedIn = append([]string(nil), inFiles...)
	f.mergedOut = outPath
	return os.WriteFile(outPath, []byte("%PDF merged"), 0o644)
}

func rec(id, first, last, path string) types.Record {
	return types.Record{ID: id, FirstName: first, LastName: last, WaiverPath: path, HasConsent: true}
}

func outPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "combined.pdf")
}

func TestSortRecords(t *testing.T) {
	in := []types.Record{
		rec("S1", "John", "Doe", "a.pdf"),
		rec("S3", "amy", "doe", "b.pdf"),
		rec("S2", "Sam", "Ames", "c.pdf"),
		rec("S4", "Amy", "Doe", "d.pdf"),
	}

	sorted := SortRecords(in)

	var ids []string
	for _, r := range sorted {
		ids = append(ids, r.ID)
	}
	// Ames first; case-insensitive (amy doe == Amy Doe) falls back to ID.
	want := []string{"S2", "S3", "S4", "S1"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("order = %v, want %v", ids, want)
		}
	}

	// Input order untouched.
	if in[0].ID != "S1" {
		t.Error("SortRecords must not mutate its input")
	}
}

func TestRun_OrdersByLastThenFirst(t *testing.T) {
	// Doe listed before Ames in the input; output must sort Ames first.
	matched := []types.Record{
		rec("S1", "John", "Doe", "/waivers/S1_x.pdf"),
		rec("S2", "Sam", "Ames", "/waivers/S2_y.pdf"),
	}
	e := &fakeEngine{}
	cfg := types.MergeConfig{OutputPath: outPath(t)}

	var log bytes.Buffer
	res, err := Run(e, matched, cfg, nil, &log)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Merged != 2 || res.Pages != 2 {
		t.Errorf("merged=%d pages=%d, want 2/2", res.Merged, res.Pages)
	}
	if !res.Wrote {
		t.Error("expected output to be written")
	}
	want := []string{"/waivers/S2_y.pdf", "/waivers/S1_x.pdf"}
	if len(e.mergedIn) != 2 || e.mergedIn[0] != want[0] || e.mergedIn[1] != want[1] {
		t.Errorf("merge order = %v, want %v", e.mergedIn, want)
	}
}

func TestRun_OrderIndependentOfInputOrder(t *testing.T) {
	a := rec("S1", "John", "Doe", "/w/S1.pdf")
	b := rec("S2", "Sam", "Ames", "/w/S2.pdf")
	c := rec("S3", "Ana", "Cruz", "/w/S3.pdf")

	permutations := [][]types.Record{
		{a, b, c}, {c, b, a}, {b, c, a},
	}

	var first []string
	for i, perm := range permutations {
		e := &fakeEngine{}
		cfg := types.MergeConfig{OutputPath: outPath(t)}
		if _, err := Run(e, perm, cfg, nil, &bytes.Buffer{}); err != nil {
			t.Fatalf("permutation %d: %v", i, err)
		}
		if first == nil {
			first = e.mergedIn
			continue
		}
		for j := range first {
			if e.mergedIn[j] != first[j] {
				t.Fatalf("permutation %d order %v differs from %v", i, e.mergedIn, first)
			}
		}
	}
}

func TestRun_SkipsInvalidDocuments(t *testing.T) {
	matched := []types.Record{
		rec("S1", "John", "Doe", "/w/S1.pdf"),
		rec("S2", "Sam", "Ames", "/w/S2.pdf"),
	}
	e := &fakeEngine{invalid: map[string]error{
		"/w/S2.pdf": errors.New("xref table corrupt"),
	}}
	cfg := types.MergeConfig{OutputPath: outPath(t)}

	var log bytes.Buffer
	res, err := Run(e, matched, cfg, nil, &log)
	if err != nil {
		t.Fatalf("an invalid document must not abort the merge: %v", err)
	}

	if res.Merged != 1 {
		t.Errorf("merged = %d, want 1", res.Merged)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Path != "/w/S2.pdf" {
		t.Errorf("skipped = %+v", res.Skipped)
	}
	if !strings.Contains(log.String(), "skipped: S2.pdf") {
		t.Errorf("log missing skip line: %q", log.String())
	}
	if len(e.mergedIn) != 1 || e.mergedIn[0] != "/w/S1.pdf" {
		t.Errorf("merge inputs = %v", e.mergedIn)
	}
}

func TestRun_EmptyInputWritesNothing(t *testing.T) {
	e := &fakeEngine{}
	out := outPath(t)
	cfg := types.MergeConfig{OutputPath: out}

	res, err := Run(e, nil, cfg, nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Wrote || res.Merged != 0 || res.Pages != 0 {
		t.Errorf("res = %+v, want zero-valued result", res)
	}
	if e.called {
		t.Error("engine must not be called for empty input")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no output file may be created for empty input")
	}
}

func TestRun_AllSkippedWritesNothing(t *testing.T) {
	matched := []types.Record{rec("S1", "John", "Doe", "/w/S1.pdf")}
	e := &fakeEngine{invalid: map[string]error{"/w/S1.pdf": errors.New("not a pdf")}}
	out := outPath(t)

	res, err := Run(e, matched, types.MergeConfig{OutputPath: out}, nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Wrote || e.called {
		t.Error("fully-skipped input must not produce an output file")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output file must not exist")
	}
}

func TestRun_RefusesToOverwrite(t *testing.T) {
	out := outPath(t)
	if err := os.WriteFile(out, []byte("existing content"), 0o644); err != nil {
		t.Fatal(err)
	}
	matched := []types.Record{rec("S1", "John", "Doe", "/w/S1.pdf")}
	e := &fakeEngine{}

	_, err := Run(e, matched, types.MergeConfig{OutputPath: out}, nil, &bytes.Buffer{})
	if !errors.Is(err, types.ErrOutputExists) {
		t.Fatalf("err = %v, want ErrOutputExists", err)
	}
	if e.called {
		t.Error("engine must not run when refusing to overwrite")
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "existing content" {
		t.Error("existing output file was modified")
	}
}

func TestRun_OverwriteReplacesExisting(t *testing.T) {
	out := outPath(t)
	if err := os.WriteFile(out, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	matched := []types.Record{rec("S1", "John", "Doe", "/w/S1.pdf")}
	e := &fakeEngine{}

	res, err := Run(e, matched, types.MergeConfig{OutputPath: out, Overwrite: true}, nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Wrote {
		t.Error("expected output to be written")
	}
	data, _ := os.ReadFile(out)
	if string(data) == "old" {
		t.Error("output was not replaced")
	}
}

func TestRun_CoverPageFirst(t *testing.T) {
	matched := []types.Record{
		rec("S1", "John", "Doe", "/w/S1.pdf"),
		rec("S2", "Sam", "Ames", "/w/S2.pdf"),
	}
	e := &fakeEngine{}
	cfg := types.MergeConfig{OutputPath: outPath(t)}

	var coverList []types.Record
	coverFor := func(included []types.Record) (string, error) {
		coverList = included
		return "/tmp/cover.pdf", nil
	}

	res, err := Run(e, matched, cfg, coverFor, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"/tmp/cover.pdf", "/w/S2.pdf", "/w/S1.pdf"}
	if len(e.mergedIn) != 3 {
		t.Fatalf("merge inputs = %v", e.mergedIn)
	}
	for i := range want {
		if e.mergedIn[i] != want[i] {
			t.Fatalf("merge inputs = %v, want %v", e.mergedIn, want)
		}
	}
	// The cover sees the records in merge order.
	if len(coverList) != 2 || coverList[0].ID != "S2" || coverList[1].ID != "S1" {
		t.Errorf("cover list = %+v", coverList)
	}
	// Cover pages are not counted as student pages.
	if res.Pages != 2 {
		t.Errorf("pages = %d, want 2", res.Pages)
	}
}

func TestRun_CoverExcludesSkippedDocuments(t *testing.T) {
	matched := []types.Record{
		rec("S1", "John", "Doe", "/w/S1.pdf"),
		rec("S2", "Sam", "Ames", "/w/S2.pdf"),
	}
	e := &fakeEngine{invalid: map[string]error{
		"/w/S2.pdf": errors.New("not a pdf"),
	}}

	var coverList []types.Record
	coverFor := func(included []types.Record) (string, error) {
		coverList = included
		return "/tmp/cover.pdf", nil
	}

	_, err := Run(e, matched, types.MergeConfig{OutputPath: outPath(t)}, coverFor, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// S2 was skipped as invalid; the cover must list only S1.
	if len(coverList) != 1 || coverList[0].ID != "S1" {
		t.Errorf("cover list = %+v, want just S1", coverList)
	}
}

func TestRun_NoCoverForEmptyMerge(t *testing.T) {
	e := &fakeEngine{invalid: map[string]error{"/w/S1.pdf": errors.New("bad")}}
	called := false
	coverFor := func(included []types.Record) (string, error) {
		called = true
		return "/tmp/cover.pdf", nil
	}

	_, err := Run(e, []types.Record{rec("S1", "John", "Doe", "/w/S1.pdf")},
		types.MergeConfig{OutputPath: outPath(t)}, coverFor, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if called {
		t.Error("cover must not be rendered when nothing is merged")
	}
}

func TestRun_SumsPageCounts(t *testing.T) {
	matched := []types.Record{
		rec("S1", "John", "Doe", "/w/S1.pdf"),
		rec("S2", "Sam", "Ames", "/w/S2.pdf"),
	}
	e := &fakeEngine{pages: map[string]int{"/w/S1.pdf": 3, "/w/S2.pdf": 2}}

	res, err := Run(e, matched, types.MergeConfig{OutputPath: outPath(t)}, nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Pages != 5 {
		t.Errorf("pages = %d, want 5", res.Pages)
	}
}
