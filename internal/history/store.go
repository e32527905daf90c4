package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists one history file per user identifier under a data
// directory. The directory is created on first save.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at the given data directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory the store writes under.
func (s *Store) Dir() string {
	return s.dir
}

// ValidateUserID rejects identifiers that are not safe as a single file
// name component: empty strings, path separators, and dot traversals.
func ValidateUserID(userID string) error {
	switch {
	case userID == "":
		return fmt.Errorf("%w: empty", ErrInvalidUserID)
	case userID == "." || userID == "..":
		return fmt.Errorf("%w: %q", ErrInvalidUserID, userID)
	case strings.ContainsAny(userID, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidUserID, userID)
	}
	return nil
}

func (s *Store) filePath(userID string) (string, error) {
	if err := ValidateUserID(userID); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, userID+".json"), nil
}

// Load reads a user's full history. A missing file is the valid empty state
// and returns ErrNotFound; an unreadable or unparseable file returns an
// error wrapping ErrCorrupted.
func (s *Store) Load(userID string) (UserHistory, error) {
	path, err := s.filePath(userID)
	if err != nil {
		return UserHistory{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return UserHistory{}, fmt.Errorf("%w: %s", ErrNotFound, userID)
		}
		return UserHistory{}, fmt.Errorf("%w: reading %s: %w", ErrCorrupted, path, err)
	}

	var h UserHistory
	if err := json.Unmarshal(data, &h); err != nil {
		return UserHistory{}, fmt.Errorf("%w: %w", ErrCorrupted, err)
	}
	return h, nil
}

// Append adds one record to the end of a user's history and persists the
// whole collection back, creating the file on first save. This is a full
// read-modify-write with no concurrent-writer protection: two simultaneous
// saves for the same user race, and the later write wins.
func (s *Store) Append(userID string, record Record) (UserHistory, error) {
	h, err := s.Load(userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return UserHistory{}, err
	}

	h.History = append(h.History, record)

	path, err := s.filePath(userID)
	if err != nil {
		return UserHistory{}, err
	}
	if err := s.write(path, h); err != nil {
		return UserHistory{}, err
	}
	return h, nil
}

// write persists the history atomically via a temp file. The 4-space indent
// matches the historical dump format.
func (s *Store) write(path string, h UserHistory) error {
	data, err := json.MarshalIndent(h, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(path), 0o750); mkdirErr != nil {
		return fmt.Errorf("creating data directory: %w", mkdirErr)
	}

	tmpPath := path + ".tmp"
	if writeErr := os.WriteFile(tmpPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing history temp file: %w", writeErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming history temp file: %w", renameErr)
	}
	return nil
}
