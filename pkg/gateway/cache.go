package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/slotcal/slotcal/pkg/schedule"
)

// cacheFileName is the fixed key the cached schedule blob lives under.
const cacheFileName = "calendar_schedules.json"

// FileCache keeps a local copy of the schedule mapping so the widget shows
// something before (or without) the remote fetch.
type FileCache struct {
	dir string
}

func NewFileCache(dir string) *FileCache {
	return &FileCache{dir: dir}
}

func (c *FileCache) path() string {
	return filepath.Join(c.dir, cacheFileName)
}

// Load reads the cached mapping. An absent cache is not an error; the second
// return value reports whether anything was found.
func (c *FileCache) Load() (schedule.Schedule, bool, error) {
	data, err := os.ReadFile(c.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read schedule cache: %w", err)
	}

	var mapping schedule.Schedule
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, false, fmt.Errorf("failed to decode schedule cache: %w", err)
	}
	return mapping, true, nil
}

// Store writes the mapping to the cache file, creating the directory if
// needed.
func (c *FileCache) Store(mapping schedule.Schedule) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("failed to encode schedule cache: %w", err)
	}
	if err := os.WriteFile(c.path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write schedule cache: %w", err)
	}
	log.Tracef("schedule cache written (%d days)", len(mapping))
	return nil
}

// Clear removes the cache file; an already absent file is fine.
func (c *FileCache) Clear() error {
	if err := os.Remove(c.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove schedule cache: %w", err)
	}
	return nil
}
