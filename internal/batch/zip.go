package batch

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteArchive bundles the produced card files into a deflate zip at
// zipPath. Entries are named by bare file name.
func WriteArchive(zipPath string, results []Result) error {
	f, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", zipPath, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, res := range results {
		if err := addFile(zw, res.Path); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing %s: %w", zipPath, err)
	}
	return f.Close()
}

func addFile(zw *zip.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("archiving %s: %w", path, err)
	}
	defer src.Close()

	dst, err := zw.Create(filepath.Base(path))
	if err != nil {
		return fmt.Errorf("archiving %s: %w", path, err)
	}
	_, err = io.Copy(dst, src)
	return err
}
