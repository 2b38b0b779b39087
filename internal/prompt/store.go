package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	oerrors "github.com/swiftfw/cli/internal/errors"
)

// Store persists answers across runs.
type Store interface {
	// Load returns all persisted answers. A missing store yields an empty record.
	Load() (Answers, error)

	// Save records a single accepted answer.
	Save(name string, value any) error
}

// FileStore keeps persisted answers in a YAML file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load implements Store.
func (s *FileStore) Load() (Answers, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() (Answers, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Answers{}, nil
		}
		return nil, fmt.Errorf("reading answers %s: %w", s.path, err)
	}

	answers := Answers{}
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parsing answers %s: %w", s.path, err)
	}
	return answers, nil
}

// Save implements Store.
func (s *FileStore) Save(name string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers, err := s.load()
	if err != nil {
		// Start over rather than fail on a corrupt file.
		answers = Answers{}
	}
	answers[name] = value

	data, err := yaml.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		if os.IsPermission(err) {
			return oerrors.Wrap(oerrors.ErrPermission, err.Error())
		}
		return fmt.Errorf("creating answers directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		if os.IsPermission(err) {
			return oerrors.Wrap(oerrors.ErrPermission, err.Error())
		}
		return fmt.Errorf("writing answers %s: %w", s.path, err)
	}
	return nil
}

// MemoryStore keeps persisted answers in memory.
type MemoryStore struct {
	mu      sync.Mutex
	answers Answers
}

// NewMemoryStore creates an in-memory store seeded with initial.
func NewMemoryStore(initial Answers) *MemoryStore {
	if initial == nil {
		initial = Answers{}
	}
	return &MemoryStore{answers: initial.Clone()}
}

// Load implements Store.
func (s *MemoryStore) Load() (Answers, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answers.Clone(), nil
}

// Save implements Store.
func (s *MemoryStore) Save(name string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[name] = value
	return nil
}
