package dictionary

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// TableCache stores built tables as JSON record files so that a dictionary
// is parsed only when its source changes.
type TableCache struct {
	rootDir string
}

func NewTableCache(cacheDirectory string) *TableCache {
	return &TableCache{
		rootDir: cacheDirectory,
	}
}

func (c *TableCache) filePath(name string) string {
	return filepath.Join(c.rootDir, name+".json")
}

// Load returns the cached table for name unless the cache is older than
// sourceModTime, in which case build is called and its table is cached.
func (c *TableCache) Load(name string, sourceModTime time.Time, build func() (*Table, error)) (*Table, error) {
	localFilePath := c.filePath(name)
	if info, err := os.Stat(localFilePath); err == nil && !info.ModTime().Before(sourceModTime) {
		table, err := c.read(name)
		if err != nil {
			return nil, fmt.Errorf("c.read(%s) > %w", name, err)
		}
		return table, nil
	}

	table, err := build()
	if err != nil {
		return nil, fmt.Errorf("build() > %w", err)
	}
	if err := c.Store(name, table); err != nil {
		return table, fmt.Errorf("c.Store(%s) > %w", name, err)
	}
	return table, nil
}

// Store writes the records of table as the cache entry name.
func (c *TableCache) Store(name string, table *Table) error {
	if err := os.MkdirAll(c.rootDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", c.rootDir, err)
	}
	contents, err := json.Marshal(table.Records())
	if err != nil {
		return fmt.Errorf("json.Marshal() > %w", err)
	}

	file, err := os.Create(c.filePath(name))
	if err != nil {
		return fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return fmt.Errorf("file.Write > %w", err)
	}
	return nil
}

func (c *TableCache) read(name string) (*Table, error) {
	file, err := os.Open(c.filePath(name))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	var records []Record
	if err := json.Unmarshal(contents, &records); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return NewTableFromRecords(records)
}
