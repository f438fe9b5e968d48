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

// WriteFiles writes all generated files, creating parent directories as
// needed. Each file is written to a temporary sibling and renamed into
// place, so a reader never sees a half-written artifact.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		err := writeFile(file)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeFile(file GeneratedFile) error {
	dir := filepath.Dir(file.Path)

	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(file.Path)+".*")
	if err != nil {
		return fmt.Errorf("writing file %s: %w", file.Path, err)
	}

	defer os.Remove(tmp.Name())

	_, err = tmp.Write(file.Content)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("writing file %s: %w", file.Path, err)
	}

	err = os.Chmod(tmp.Name(), filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", file.Path, err)
	}

	err = os.Rename(tmp.Name(), file.Path)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", file.Path, err)
	}

	return nil
}
