package document

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// File places a rendered document on disk and drives the external LaTeX
// toolchain. It is a thin collaborator around os and os/exec; nothing
// here touches the in-memory tree.
type File struct {
	// Name is the base filename without extension.
	Name string
	// Dir is the directory the .tex and .pdf land in.
	Dir string
}

// NewFile describes where a document will be written.
func NewFile(name, dir string) *File {
	return &File{Name: name, Dir: dir}
}

// TexPath reports the full path of the .tex file.
func (f *File) TexPath() string {
	return filepath.Join(f.Dir, f.Name+".tex")
}

// Save writes the rendered source to TexPath, creating the directory if
// needed.
func (f *File) Save(source string) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("document: creating %s: %w", f.Dir, err)
	}
	if err := os.WriteFile(f.TexPath(), []byte(source), 0o644); err != nil {
		return fmt.Errorf("document: writing %s: %w", f.TexPath(), err)
	}

	return nil
}

// CompilePDF runs pdflatex on the saved .tex file, blocking until the
// toolchain exits or ctx is done. Compilation output stays in Dir.
func (f *File) CompilePDF(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "pdflatex", "-interaction=nonstopmode", f.Name+".tex")
	cmd.Dir = f.Dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("document: pdflatex on %s: %w\n%s", f.TexPath(), err, out)
	}

	return nil
}
