package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/julianstephens/dayflow/internal/constants"
)

type jsonFile struct {
	Version int                        `json:"version"`
	Data    map[string]json.RawMessage `json:"data"`
}

// JSONStore keeps every key in a single JSON file, rewritten on each change.
type JSONStore struct {
	path string

	mu   sync.Mutex
	file *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		// already initialized; keep existing data
		return s.load()
	}
	s.file = &jsonFile{Version: 1, Data: make(map[string]json.RawMessage)}
	return s.save()
}

func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *JSONStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	f := &jsonFile{}
	if err := json.Unmarshal(data, f); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if f.Data == nil {
		f.Data = make(map[string]json.RawMessage)
	}
	s.file = f
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil, ErrNotLoaded
	}
	v, ok := s.file.Data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores value under key. The value must be valid JSON.
func (s *JSONStore) Set(key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return ErrNotLoaded
	}
	s.file.Data[key] = append(json.RawMessage(nil), value...)
	return s.save()
}

func (s *JSONStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return ErrNotLoaded
	}
	if _, ok := s.file.Data[key]; !ok {
		return nil
	}
	delete(s.file.Data, key)
	return s.save()
}

func (s *JSONStore) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil, ErrNotLoaded
	}
	keys := make([]string, 0, len(s.file.Data))
	for k := range s.file.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
