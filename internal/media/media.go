// Package media keeps files uploaded through the admin forms on local disk.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrFileTooLarge      = errors.New("file too large")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyFile         = errors.New("empty file")
)

type Store struct {
	dir       string
	publicURL string
	maxSize   int64
}

// New creates a store writing below dir and serving files under publicURL,
// e.g. "/uploads" or "https://cdn.example.com/uploads".
func New(dir, publicURL string, maxSize int64) (*Store, error) {
	const op = "media.New"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
		maxSize:   maxSize,
	}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save stores the uploaded file under the resource folder and returns its
// public URL. The content type is detected from the file bytes.
func (s *Store) Save(ctx context.Context, resource string, fh *multipart.FileHeader, accept []string) (string, error) {
	const op = "media.Save"

	if fh.Size == 0 {
		return "", fmt.Errorf("%s: %s: %w", op, fh.Filename, ErrEmptyFile)
	}
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return "", fmt.Errorf("%s: %s: %w", op, fh.Filename, ErrFileTooLarge)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if len(accept) > 0 && !mimetype.EqualsAny(mtype.String(), accept...) {
		return "", fmt.Errorf("%s: %s is %s: %w", op, fh.Filename, mtype.String(), ErrUnsupportedFormat)
	}

	if _, err = src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err = ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	folder := filepath.Join(s.dir, resource)
	if err = os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	name := uuid.NewString() + mtype.Extension()
	dst, err := os.OpenFile(filepath.Join(folder, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err = dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return s.publicURL + "/" + path.Join(resource, name), nil
}

// Remove deletes a file previously returned by Save. URLs that do not
// belong to the store and files that are already gone are ignored.
func (s *Store) Remove(url string) error {
	const op = "media.Remove"

	rel, ok := s.relative(url)
	if !ok {
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(rel))); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store) Owns(url string) bool {
	_, ok := s.relative(url)
	return ok
}

func (s *Store) relative(url string) (string, bool) {
	rel, ok := strings.CutPrefix(url, s.publicURL+"/")
	if !ok || rel == "" {
		return "", false
	}

	rel = path.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") || path.IsAbs(rel) {
		return "", false
	}

	return rel, true
}
