package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ErrUnsupportedType is returned for anything that is not an image or video.
var ErrUnsupportedType = errors.New("not a video or image file")

// Store writes uploaded files to a local directory and serves them back
// under a fixed relative prefix. There is no transactional link to
// resources: callers attach the returned path themselves.
type Store struct {
	dir string
}

// NewStore creates the upload directory if it does not exist.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save writes a single multipart file to disk and returns the stored
// file name. Only image/* and video/* content types are accepted.
func (s *Store) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	ct := header.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") && !strings.HasPrefix(ct, "video/") {
		return "", ErrUnsupportedType
	}

	name := strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + filepath.Base(header.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored file, tolerating an already-missing one.
func (s *Store) Remove(name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
