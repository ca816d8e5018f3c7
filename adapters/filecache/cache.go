package filecache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gowrangle/domain/core"
	"gowrangle/domain/frame"
	"gowrangle/internal"
	"gowrangle/internal/errors"

	"github.com/spf13/afero"
)

// Cache stores frames as flat files under a base directory. The codec is
// chosen by extension: .xlsx goes through excelize, anything else is CSV.
type Cache struct {
	fs     afero.Fs
	logger *internal.Logger
}

// New creates a cache rooted at dir on the OS filesystem
func New(dir string, logger *internal.Logger) *Cache {
	return NewWithFs(afero.NewBasePathFs(afero.NewOsFs(), dir), logger)
}

// NewWithFs creates a cache on an arbitrary filesystem
func NewWithFs(fs afero.Fs, logger *internal.Logger) *Cache {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Cache{fs: fs, logger: logger}
}

// Exists reports whether a regular file with the name is present
func (c *Cache) Exists(filename string) (bool, error) {
	info, err := c.fs.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.CacheError(fmt.Sprintf("failed to stat %s", filename), fmt.Errorf("%w: %v", core.ErrCacheIO, err))
	}
	return !info.IsDir(), nil
}

// Read parses a cache file, treating its first column as the row index
func (c *Cache) Read(filename string) (*frame.Frame, error) {
	return c.read(filename, true)
}

// ReadTable parses a file that has no index column, such as a predictions
// export, and gives it the default range index
func (c *Cache) ReadTable(filename string) (*frame.Frame, error) {
	return c.read(filename, false)
}

func (c *Cache) read(filename string, indexed bool) (*frame.Frame, error) {
	file, err := c.fs.Open(filename)
	if err != nil {
		return nil, errors.CacheError(fmt.Sprintf("failed to open %s", filename), fmt.Errorf("%w: %v", core.ErrCacheIO, err))
	}
	defer file.Close()

	var header []string
	var rows [][]string
	if isExcel(filename) {
		header, rows, err = readExcel(file)
	} else {
		header, rows, err = readCSV(file)
	}
	if err != nil {
		return nil, errors.CacheError(fmt.Sprintf("failed to read %s", filename), fmt.Errorf("%w: %v", core.ErrCacheIO, err))
	}

	f, err := frame.FromRecords(header, rows, indexed)
	if err != nil {
		return nil, errors.CacheError(fmt.Sprintf("failed to parse %s", filename), err)
	}

	c.logger.Debug("[filecache] read %s (%d rows, %d columns)", filename, f.Len(), len(f.Columns()))
	return f, nil
}

// Write creates or overwrites a cache file with the index as column 0
func (c *Cache) Write(filename string, f *frame.Frame) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := c.fs.MkdirAll(dir, 0o755); err != nil {
			return errors.CacheError(fmt.Sprintf("failed to create %s", dir), fmt.Errorf("%w: %v", core.ErrCacheIO, err))
		}
	}

	file, err := c.fs.Create(filename)
	if err != nil {
		return errors.CacheError(fmt.Sprintf("failed to create %s", filename), fmt.Errorf("%w: %v", core.ErrCacheIO, err))
	}

	header, rows := f.Records()
	if isExcel(filename) {
		err = writeExcel(file, header, rows)
	} else {
		err = writeCSV(file, header, rows)
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.CacheError(fmt.Sprintf("failed to write %s", filename), fmt.Errorf("%w: %v", core.ErrCacheIO, err))
	}

	c.logger.Debug("[filecache] wrote %s (%d rows)", filename, f.Len())
	return nil
}

func isExcel(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".xlsx")
}

