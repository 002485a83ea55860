// Package archive stores finished compliance reports for later retrieval.
// Backends: memory (tests, embedding) and file (one JSON document per
// report under a directory).
package archive

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"foster-budget/core/types"
	"foster-budget/internal/errors"
)

// Backend is an archive backend type
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
)

// Archive persists compliance reports
type Archive interface {
	// Save stores a report and returns its id
	Save(ctx context.Context, report *types.ComplianceReport) (string, error)

	// Get retrieves a report by id
	Get(ctx context.Context, id string) (*types.ComplianceReport, error)

	// List returns the ids of all stored reports
	List(ctx context.Context) ([]string, error)
}

// MemoryArchive keeps reports in memory
type MemoryArchive struct {
	mu      sync.RWMutex
	reports map[string]*types.ComplianceReport
}

// NewMemoryArchive creates an empty memory archive
func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{reports: make(map[string]*types.ComplianceReport)}
}

// Save stores a report and returns its id
func (a *MemoryArchive) Save(ctx context.Context, report *types.ComplianceReport) (string, error) {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reports[report.ID] = report
	return report.ID, nil
}

// Get retrieves a report by id
func (a *MemoryArchive) Get(ctx context.Context, id string) (*types.ComplianceReport, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	report, ok := a.reports[id]
	if !ok {
		return nil, errors.NotFound("report", id)
	}
	return report, nil
}

// List returns the ids of all stored reports
func (a *MemoryArchive) List(ctx context.Context) ([]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ids := make([]string, 0, len(a.reports))
	for id := range a.reports {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// FileArchive writes one JSON document per report under a directory
type FileArchive struct {
	dir string
	mu  sync.Mutex
}

// NewFileArchive creates the directory if needed
func NewFileArchive(dir string) (*FileArchive, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Config("failed to create archive directory", err)
	}
	return &FileArchive{dir: dir}, nil
}

// Save stores a report and returns its id
func (a *FileArchive) Save(ctx context.Context, report *types.ComplianceReport) (string, error) {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", errors.Internal("failed to encode report", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := os.WriteFile(a.path(report.ID), data, 0644); err != nil {
		return "", errors.Internal("failed to write report", err)
	}
	return report.ID, nil
}

// Get retrieves a report by id
func (a *FileArchive) Get(ctx context.Context, id string) (*types.ComplianceReport, error) {
	data, err := os.ReadFile(a.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("report", id)
		}
		return nil, errors.Internal("failed to read report", err)
	}

	var report types.ComplianceReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errors.Internal("failed to decode report", err)
	}
	return &report, nil
}

// List returns the ids of all stored reports
func (a *FileArchive) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, errors.Internal("failed to list archive", err)
	}
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

func (a *FileArchive) path(id string) string {
	return filepath.Join(a.dir, id+".json")
}
