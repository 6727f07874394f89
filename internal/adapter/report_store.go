package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	m "github.com/awhisler/wdioTest/internal/model"
)

const (
	resultFileSuffix     = "-result.json"
	attachmentFileMarker = "-attachment"
)

// ResultStore persists test results and their attachments in the layout the
// report generator reads.
type ResultStore interface {
	// SaveResult writes <uuid>-result.json.
	SaveResult(result m.TestResult) error
	// SaveAttachment writes <uuid>-attachment.<ext> and returns the file name
	// to reference from a result.
	SaveAttachment(content []byte, ext string) (string, error)
	// LoadResults reads every result file, ordered by start time.
	LoadResults() ([]m.TestResult, error)
}

// FileResultStore is a ResultStore over a results directory.
type FileResultStore struct {
	dir m.Path
	mu  sync.Mutex
}

// NewFileResultStore returns a store writing into dir.
func NewFileResultStore(dir m.Path) *FileResultStore {
	return &FileResultStore{dir: dir}
}

// Dir returns the results directory.
func (s *FileResultStore) Dir() m.Path {
	return s.dir
}

// SaveResult writes the result as JSON, creating the directory when needed.
func (s *FileResultStore) SaveResult(result m.TestResult) error {
	if result.UUID == "" {
		result.UUID = uuid.NewString()
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result %s: %w", result.UUID, err)
	}

	return s.write(result.UUID+resultFileSuffix, data)
}

// SaveAttachment writes content under a fresh uuid.
func (s *FileResultStore) SaveAttachment(content []byte, ext string) (string, error) {
	name := uuid.NewString() + attachmentFileMarker
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		name += "." + ext
	}

	if err := s.write(name, content); err != nil {
		return "", err
	}

	return name, nil
}

func (s *FileResultStore) write(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(string(s.dir), 0o755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(string(s.dir), name), data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}

// LoadResults reads all result files. A missing directory yields no results.
func (s *FileResultStore) LoadResults() ([]m.TestResult, error) {
	entries, err := os.ReadDir(string(s.dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read results dir: %w", err)
	}

	var results []m.TestResult

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), resultFileSuffix) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(string(s.dir), entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}

		var result m.TestResult
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("decode %s: %w", entry.Name(), err)
		}

		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Start != results[j].Start {
			return results[i].Start < results[j].Start
		}

		return results[i].FullName < results[j].FullName
	})

	return results, nil
}
