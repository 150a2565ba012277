package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/taskboard/internal/model"
)

// JSON file holding a task collection in the same shape the remote
// service returns. Read-only: the board is never written back.

// Store is an offline task source.
type Store struct {
	path string
}

// New returns a store for path. Relative paths resolve against the
// working directory at read time.
func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) dataPath() (string, error) {
	if filepath.IsAbs(s.path) {
		return s.path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, s.path), nil
}

// FetchAll reads the file. A missing file is an empty collection.
func (s *Store) FetchAll(ctx context.Context) ([]model.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.dataPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var tasks []model.Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return tasks, nil
}
