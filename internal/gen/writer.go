package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GeneratedFile is one rendered output file.
type GeneratedFile struct {
	// Filename is relative to the output directory.
	Filename string
	Content  []byte
}

// WriteFiles writes the files under outputDir, creating directories as
// needed.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if dir := filepath.Dir(outputPath); dir != outputDir {
			if err := os.MkdirAll(dir, dirPerm); err != nil {
				return fmt.Errorf("creating directory for %s: %w", file.Filename, err)
			}
		}

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
