// Package filex contains filesystem helpers for the CV upload flow:
// pre-flight validation of candidate CV files and directory handling.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxCVSize is the largest CV the career service accepts.
const MaxCVSize = 5 * 1024 * 1024

// cvExtensions lists the document types accepted for a CV.
var cvExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// ValidateCVFile checks that path points to a regular file with an accepted
// document extension and a size within MaxCVSize. It returns the file size
// on success so callers can report it.
func ValidateCVFile(path string) (int64, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := cvExtensions[ext]; !ok {
		return 0, fmt.Errorf("unsupported file type %q: please use a PDF or Word document", ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a regular file", path)
	}
	if info.Size() > MaxCVSize {
		return 0, fmt.Errorf("file size must be less than 5MB, got %d bytes", info.Size())
	}

	return info.Size(), nil
}

// EnsureParentDir creates (if needed) and returns the directory that the
// given file path lives in, so callers can open files under paths whose
// directories may not exist yet.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
