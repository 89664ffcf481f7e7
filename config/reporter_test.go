package config

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestReport_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	dest := filepath.Join(tmpDir, "report.zip")

	conf := &ReporterConfig{Destination: dest}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if rpt.Name() == "" {
		t.Error("Name() returned empty string for initialized report")
	}

	artifact := filepath.Join(tmpDir, "output.css")
	if err := os.WriteFile(artifact, []byte(".p-phi { padding: 1.618034rem; }\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rpt.StoreData("theme.yaml", []byte("spacing:\n  phi: 1.618034rem\n"))
	rpt.Store("output.css", artifact)

	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	r, err := zip.OpenReader(dest)
	if err != nil {
		t.Fatalf("report is not a readable zip: %v", err)
	}
	defer r.Close()

	names := make(map[string]bool, len(r.File))
	for _, f := range r.File {
		names[f.Name] = true
	}
	for _, want := range []string{"theme.yaml", "output.css"} {
		if !names[want] {
			t.Errorf("report missing entry %q, have %v", want, names)
		}
	}
}

func TestReport_NilSafe(t *testing.T) {
	var rpt *Report

	// all operations must be no-ops on a nil report
	rpt.Store("name", "path")
	rpt.StoreData("name", nil)
	if got := rpt.Name(); got != "" {
		t.Errorf("Name() on nil report = %q", got)
	}
	if err := rpt.Close(); err != nil {
		t.Errorf("Close() on nil report error = %v", err)
	}
}

func TestReport_DuplicateDataPanics(t *testing.T) {
	tmpDir := t.TempDir()
	conf := &ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatal(err)
	}
	defer rpt.Close()

	rpt.StoreData("same", []byte("a"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate StoreData name")
		}
	}()
	rpt.StoreData("same", []byte("b"))
}
