package site

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// copyCSS copies the stylesheet from the templates directory to the
// output root. A missing stylesheet is skipped silently.
func (s *Site) copyCSS() error {
	src := filepath.Join(s.cfg.TemplatesDir, "style.css")
	if _, err := os.Stat(src); os.IsNotExist(err) {
		slog.Debug("no stylesheet to copy", "path", src)
		return nil
	}
	return copyFile(src, filepath.Join(s.cfg.OutputDir, "style.css"))
}

func (s *Site) copyFonts() error {
	n, err := copyFlatDir(s.cfg.FontsDir, filepath.Join(s.cfg.OutputDir, "fonts"))
	if err != nil {
		return fmt.Errorf("copy fonts: %w", err)
	}
	if n > 0 {
		slog.Debug("copied fonts", "count", n)
	}
	return nil
}

func (s *Site) copyImages() error {
	n, err := copyFlatDir(filepath.Join(s.cfg.ContentDir, "img"), filepath.Join(s.cfg.OutputDir, "img"))
	if err != nil {
		return fmt.Errorf("copy images: %w", err)
	}
	if n > 0 {
		slog.Debug("copied images", "count", n)
	}
	return nil
}

// copyFlatDir copies the regular files directly under src into dst,
// skipping subdirectories and anything that is not a regular file.
// A missing source directory is a silent no-op.
func copyFlatDir(src, dst string) (int, error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	if err := os.MkdirAll(dst, os.ModePerm); err != nil {
		return 0, fmt.Errorf("create directory %s: %w", dst, err)
	}

	copied := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if err := copyFile(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	if err := os.MkdirAll(filepath.Dir(dstFile), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create destination directory %s: %w", filepath.Dir(dstFile), err)
	}

	dstF, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer dstF.Close()

	if _, err := io.Copy(dstF, srcF); err != nil {
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}
	return nil
}
