// Package artifact manages the on-disk layout of run and registry artifacts.
// All paths handed out and stored in the database are relative to the store
// root, so the root can move without rewriting rows.
package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ocrflow/pkg/domain"

	"github.com/google/uuid"
)

// Store places run artifacts under <root>/runs/<run_id>/artifacts and
// registry copies under <root>/registry/<model_id>/<version>.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given directory. The directory is
// created if it does not exist.
func NewStore(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("could not resolve artifact root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("could not create artifact root: %w", err)
	}

	return &Store{root: abs}, nil
}

// Root returns the absolute store root.
func (s *Store) Root() string {
	return s.root
}

// RunRoot returns the store-relative artifact directory of a run.
func (s *Store) RunRoot(id domain.RunID) string {
	return filepath.Join("runs", uuid.UUID(id).String(), "artifacts")
}

// VersionRoot returns the store-relative artifact directory of a registered
// model version.
func (s *Store) VersionRoot(modelID domain.ModelID, version int) string {
	return filepath.Join("registry", uuid.UUID(modelID).String(), strconv.Itoa(version))
}

// Resolve maps a store-relative path to an absolute one, rejecting paths that
// escape the store root.
func (s *Store) Resolve(rel string) (string, error) {
	if err := ValidateRelPath(rel); err != nil {
		return "", err
	}

	return filepath.Join(s.root, filepath.FromSlash(rel)), nil
}

// ValidateRelPath checks that a path is relative and stays inside the store
// when joined with its root.
func ValidateRelPath(rel string) error {
	if rel == "" {
		return fmt.Errorf("artifact path must not be empty")
	}
	if filepath.IsAbs(rel) {
		return fmt.Errorf("artifact path %q must be relative", rel)
	}
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("artifact path %q escapes the store root", rel)
	}

	return nil
}

// DirExists reports whether the store-relative directory exists.
func (s *Store) DirExists(rel string) (bool, error) {
	abs, err := s.Resolve(rel)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not stat artifact dir: %w", err)
	}

	return info.IsDir(), nil
}

// MkdirAll creates the store-relative directory and its parents.
func (s *Store) MkdirAll(rel string) (string, error) {
	abs, err := s.Resolve(rel)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", fmt.Errorf("could not create artifact dir: %w", err)
	}

	return abs, nil
}

// RemoveAll deletes the store-relative directory recursively. Used to clean up
// half-copied version artifacts.
func (s *Store) RemoveAll(rel string) error {
	abs, err := s.Resolve(rel)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("could not remove artifact dir: %w", err)
	}

	return nil
}

// CopyDir copies the src directory tree into dst, both store-relative. dst is
// created and must not already contain files that collide with src entries.
func (s *Store) CopyDir(src, dst string) error {
	absSrc, err := s.Resolve(src)
	if err != nil {
		return err
	}
	absDst, err := s.Resolve(dst)
	if err != nil {
		return err
	}

	return copyTree(absSrc, absDst)
}

func copyTree(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("could not read artifact dir: %w", err)
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("could not create artifact dir: %w", err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := copyTree(srcPath, dstPath); err != nil {
				return err
			}

			continue
		}

		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("could not open artifact file: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("could not create artifact file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()

		return fmt.Errorf("could not copy artifact file: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("could not close artifact file: %w", err)
	}

	return nil
}
