package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"portfolio/internal/apperr"
)

// Extension allow-lists for uploads. Anything else is rejected before the
// file touches disk.
var (
	imageExtensions    = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true}
	documentExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileStore writes uploaded binaries into a single directory on disk.
// Records reference files by their sanitized filename only.
type FileStore struct {
	root string
}

// NewFileStore creates the upload directory if needed and returns a store
// rooted there.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("mkdir upload dir: %w", err)
	}
	return &FileStore{root: root}, nil
}

// Root returns the upload directory path.
func (s *FileStore) Root() string { return s.root }

// SaveImage validates the extension against the image allow-list, sanitizes
// the filename and writes the file. Returns the stored filename. A repeated
// upload of the same name overwrites the previous file.
func (s *FileStore) SaveImage(fh *multipart.FileHeader) (string, error) {
	return s.save(fh, imageExtensions, "")
}

// SaveDocument validates against the document allow-list and prefixes the
// stored name with a timestamp so successive resume uploads never collide.
func (s *FileStore) SaveDocument(fh *multipart.FileHeader) (string, error) {
	prefix := time.Now().Format("20060102_150405") + "_"
	return s.save(fh, documentExtensions, prefix)
}

func (s *FileStore) save(fh *multipart.FileHeader, allowed map[string]bool, prefix string) (string, error) {
	const op = "FileStore.save"

	name := SanitizeFilename(fh.Filename)
	ext := strings.ToLower(filepath.Ext(name))
	if !allowed[ext] {
		return "", apperr.E(apperr.CodeUnsupportedFile, op,
			fmt.Sprintf("file type %q is not allowed", ext), nil)
	}
	name = prefix + name

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write stored file: %w", err)
	}
	return name, nil
}

// Path resolves a stored filename to its path on disk. The name is reduced
// to its base component so a stored record can never escape the upload dir.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.root, filepath.Base(name))
}

// Exists reports whether a stored file is present on disk.
func (s *FileStore) Exists(name string) bool {
	if name == "" {
		return false
	}
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Remove deletes a stored file, tolerating its absence.
func (s *FileStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	if err := os.Remove(s.Path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stored file: %w", err)
	}
	return nil
}

// SanitizeFilename strips any path components and reduces the name to a safe
// character set. An empty result falls back to "file".
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	return name
}
