package pdfmeta

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"pdfmeta/internal/testpdf"
)

var modDateRx = regexp.MustCompile(`^D:\d{14}(Z|[+-]\d{2}'\d{2}')$`)

// writePDF stores a testpdf document under dir and returns its path.
func writePDF(t *testing.T, dir, name, info string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, testpdf.Minimal(info), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func mustLoad(t *testing.T, b []byte) *model.Context {
	t.Helper()
	ctx, err := loadBytes(b)
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return ctx
}

// tmpFiles lists staging leftovers beside path.
func tmpFiles(t *testing.T, path string) []string {
	t.Helper()
	matches, err := filepath.Glob(path + ".*.tmp")
	if err != nil {
		t.Fatal(err)
	}
	return matches
}

func entryMap(entries []Entry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return m
}
