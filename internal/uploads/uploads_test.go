package uploads

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestEnsureSurveyDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := NewProvisioner(fs, "/srv/upload")

	dir := p.SurveyFilesDir(42)
	if dir != filepath.Join("/srv/upload", "surveys", "42", "files") {
		t.Fatalf("SurveyFilesDir: got %q", dir)
	}

	if err := p.EnsureSurveyDir(42); err != nil {
		t.Fatalf("EnsureSurveyDir: %v", err)
	}
	content, err := afero.ReadFile(fs, filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(content) != placeholderIndex {
		t.Fatalf("index.html: got %q", content)
	}
}

func TestEnsureSurveyDirKeepsExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := NewProvisioner(fs, "upload")
	index := filepath.Join(p.SurveyFilesDir(7), "index.html")

	if err := fs.MkdirAll(p.SurveyFilesDir(7), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := afero.WriteFile(fs, index, []byte("custom"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := p.EnsureSurveyDir(7); err != nil {
		t.Fatalf("EnsureSurveyDir: %v", err)
	}
	content, _ := afero.ReadFile(fs, index)
	if string(content) != "custom" {
		t.Fatalf("existing index.html overwritten: %q", content)
	}
}

func TestEnsureSurveyDirReadOnly(t *testing.T) {
	p := NewProvisioner(afero.NewReadOnlyFs(afero.NewMemMapFs()), "upload")
	if err := p.EnsureSurveyDir(1); err == nil {
		t.Fatalf("EnsureSurveyDir: expected error on read-only filesystem")
	}
}
