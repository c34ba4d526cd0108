package careers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// MaxResumeSize is the upload cap for resume files.
const MaxResumeSize = 5 << 20 // 5 MiB

var (
	ErrResumeTooLarge = errors.New("Resume must be 5MB or smaller")
	ErrResumeType     = errors.New("Only PDF, DOC, and DOCX files are allowed")
)

// content type expected for each allowed extension
var allowedTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Store is the transient holding area for uploaded resumes. Files live
// under dir for at most one request; the pipeline removes them on every
// exit path.
type Store struct {
	dir string
}

// NewStore ensures dir exists and returns the store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// Validate checks size and type constraints. It runs before any byte is
// written, so a rejected upload never leaves a partial file behind.
func (s *Store) Validate(fh *multipart.FileHeader) error {
	if fh.Size > MaxResumeSize {
		return ErrResumeTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	want, ok := allowedTypes[ext]
	if !ok {
		return ErrResumeType
	}
	if ct := fh.Header.Get("Content-Type"); ct != want {
		return ErrResumeType
	}
	return nil
}

// Save writes the upload to disk under a collision-resistant name and
// returns the on-disk path.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeFilename(fh.Filename))
	path := filepath.Join(s.dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// Remove deletes a previously saved file.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SanitizeFilename strips any path component and replaces characters
// outside [A-Za-z0-9.-] with underscores.
func SanitizeFilename(name string) string {
	return unsafeChars.ReplaceAllString(filepath.Base(name), "_")
}

// IsValidationErr reports whether err is an intake validation failure.
func IsValidationErr(err error) bool {
	return errors.Is(err, ErrResumeTooLarge) || errors.Is(err, ErrResumeType)
}
