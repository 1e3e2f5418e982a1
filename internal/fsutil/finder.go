// Package fsutil provides file system discovery for wireframe documents.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// docExtension is the document suffix the loaders understand.
const docExtension = ".hcl"

// FindDocFiles resolves a path to the list of document files it denotes. A
// file path must carry the document extension; a directory is searched
// recursively. Results are sorted so multi-file documents load in a stable
// order regardless of filesystem iteration.
func FindDocFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("document path not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	if !info.IsDir() {
		if filepath.Ext(path) != docExtension {
			return nil, fmt.Errorf("specified file is not a %s document: %s", docExtension, path)
		}
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), docExtension) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
