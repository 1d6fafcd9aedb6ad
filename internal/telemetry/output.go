package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gocarina/gocsv"
)

// ConfigWriter is implemented by configurations that can snapshot
// themselves as YAML.
type ConfigWriter interface {
	WriteYAML(path string) error
}

// OutputManager writes run output as CSV files in one directory. It is safe
// for concurrent use since settlements arrive from the update goroutine.
type OutputManager struct {
	dir string

	mu     sync.Mutex
	files  map[string]*os.File
	header map[string]bool
}

// NewOutputManager creates the output directory. Returns nil if dir is empty
// (output disabled); all methods accept a nil receiver.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &OutputManager{
		dir:    dir,
		files:  map[string]*os.File{},
		header: map[string]bool{},
	}, nil
}

// WriteConfig saves the effective configuration as config.yaml.
func (om *OutputManager) WriteConfig(cfg ConfigWriter) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteSettlement appends a record to settles.csv.
func (om *OutputManager) WriteSettlement(rec SettleRecord) error {
	if om == nil {
		return nil
	}
	return om.append("settles.csv", []SettleRecord{rec})
}

// WriteSweep appends records to sweep.csv.
func (om *OutputManager) WriteSweep(recs []SweepRecord) error {
	if om == nil || len(recs) == 0 {
		return nil
	}
	return om.append("sweep.csv", recs)
}

func (om *OutputManager) append(name string, records any) error {
	om.mu.Lock()
	defer om.mu.Unlock()

	f, ok := om.files[name]
	if !ok {
		var err error
		f, err = os.Create(filepath.Join(om.dir, name))
		if err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
		om.files[name] = f
	}

	if !om.header[name] {
		// First write includes headers
		if err := gocsv.Marshal(records, f); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		om.header[name] = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, f); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	om.mu.Lock()
	defer om.mu.Unlock()

	var firstErr error
	for name, f := range om.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(om.files, name)
	}
	return firstErr
}
