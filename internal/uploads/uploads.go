// Package uploads provisions the directories holding files uploaded to surveys.
package uploads

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
)

const placeholderIndex = "<html><head></head><body></body></html>"

type Provisioner struct {
	fs   afero.Fs
	root string
}

func NewProvisioner(fs afero.Fs, root string) *Provisioner {
	return &Provisioner{fs: fs, root: root}
}

// SurveyFilesDir is <root>/surveys/<sid>/files.
func (p *Provisioner) SurveyFilesDir(sid uint) string {
	return filepath.Join(p.root, "surveys", strconv.FormatUint(uint64(sid), 10), "files")
}

// EnsureSurveyDir creates the survey's files directory with a placeholder index.html.
// An existing directory is left untouched.
func (p *Provisioner) EnsureSurveyDir(sid uint) error {
	dir := p.SurveyFilesDir(sid)
	exists, err := afero.DirExists(p.fs, dir)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if exists {
		return nil
	}
	if err := p.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	index := filepath.Join(dir, "index.html")
	if err := afero.WriteFile(p.fs, index, []byte(placeholderIndex), os.FileMode(0o644)); err != nil {
		return fmt.Errorf("failed to write %s: %w", index, err)
	}
	return nil
}
