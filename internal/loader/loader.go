package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/KaramelBytes/colprofile/internal/columns"
	"github.com/rs/zerolog/log"
)

// Table is a decoded file: a header plus rows aligned with it.
type Table struct {
	Name   string
	Path   string
	Size   int64
	Format string
	Header []string
	Rows   []columns.Row
}

// Options tune how files are decoded.
type Options struct {
	// Delimiter for CSV. If 0, chosen from the extension (',' or '\t').
	Delimiter rune
	// Sheet selects an XLSX sheet by name; empty means the first sheet.
	Sheet string
}

// Loader decodes one family of file formats.
type Loader interface {
	CanLoad(filename string) bool
	Load(path string, opt Options) (*Table, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// LoadFile picks a loader by filename and decodes path.
func LoadFile(path string, opt Options) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	for _, l := range registry {
		if !l.CanLoad(path) {
			continue
		}
		start := time.Now()
		tbl, err := l.Load(path, opt)
		if err != nil {
			return nil, err
		}
		tbl.Name = filepath.Base(path)
		tbl.Path = path
		tbl.Size = info.Size()
		log.Debug().
			Str("file", tbl.Name).
			Str("format", tbl.Format).
			Int("columns", len(tbl.Header)).
			Int("rows", len(tbl.Rows)).
			Dur("elapsed", time.Since(start)).
			Msg("loaded table")
		return tbl, nil
	}
	return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
}

// Supported reports whether some registered loader accepts filename.
func Supported(filename string) bool {
	for _, l := range registry {
		if l.CanLoad(filename) {
			return true
		}
	}
	return false
}

func init() {
	Register(csvLoader{})
	Register(jsonLoader{})
	Register(xlsxLoader{})
}

var (
	// ErrUnsupported indicates a file format no loader handles.
	ErrUnsupported = errors.New("unsupported file format")
	// ErrEmpty indicates a file without a header row.
	ErrEmpty = errors.New("file has no header")
)

// rowsFrom pairs each record with the header.
func rowsFrom(header []string, records [][]string) []columns.Row {
	rows := make([]columns.Row, len(records))
	for i, rec := range records {
		rows[i] = columns.NewRow(header, rec)
	}
	return rows
}
