// Package documents turns analyzed tables into the file and dataset documents
// handed to storage or printed by the CLI.
package documents

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/KaramelBytes/colprofile/internal/columns"
	"github.com/KaramelBytes/colprofile/internal/loader"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// File is the analysis of one tabular file.
type File struct {
	ID          string                   `json:"id" yaml:"id"`
	Name        string                   `json:"name" yaml:"name"`
	Path        string                   `json:"path" yaml:"path"`
	Size        int64                    `json:"size" yaml:"size"`
	FileType    string                   `json:"fileType" yaml:"fileType"`
	Rows        int                      `json:"rows" yaml:"rows"`
	Description string                   `json:"description" yaml:"description"`
	Columns     []columns.AnalyzedColumn `json:"columns" yaml:"columns"`
	CreatedAt   time.Time                `json:"createdAt" yaml:"createdAt"`
}

// Summary describes a dataset as a whole.
type Summary struct {
	FileTypes []string `json:"fileTypes" yaml:"fileTypes"`
}

// Dataset groups the files analyzed together.
type Dataset struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Summary   Summary   `json:"summary" yaml:"summary"`
	Size      int64     `json:"size" yaml:"size"`
	Files     []File    `json:"files" yaml:"files"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// Options control how files are loaded and typed.
type Options struct {
	Load loader.Options
	// IDColumns overrides columns.DefaultIDColumns when non-nil.
	IDColumns []string
	// Types forces the type of named columns after inference.
	Types map[string]columns.Type
	// Jobs bounds how many files are analyzed at once; <= 0 means one.
	Jobs int
}

// NewDataset constructs an empty dataset document.
func NewDataset(name string) *Dataset {
	return &Dataset{
		ID:        uuid.NewString(),
		Name:      name,
		Summary:   Summary{FileTypes: []string{}},
		Files:     []File{},
		CreatedAt: time.Now(),
	}
}

// AddFile appends f and refreshes the size and the file type summary.
// A file whose name is already present is ignored and false is returned.
func (d *Dataset) AddFile(f File) bool {
	for _, existing := range d.Files {
		if existing.Name == f.Name {
			return false
		}
	}
	d.Files = append(d.Files, f)
	d.Size += f.Size
	for _, t := range d.Summary.FileTypes {
		if t == f.FileType {
			return true
		}
	}
	d.Summary.FileTypes = append(d.Summary.FileTypes, f.FileType)
	return true
}

// AnalyzeTable infers the column descriptors of tbl, applies the type
// overrides and runs the column analysis.
func AnalyzeTable(tbl *loader.Table, opt Options) (File, error) {
	cols := columns.Infer(tbl.Header, tbl.Rows, opt.IDColumns)
	for i := range cols {
		if t, ok := opt.Types[cols[i].Name]; ok {
			cols[i].Type = t
		}
	}
	analyses, err := columns.Analyze(cols, tbl.Rows)
	if err != nil {
		return File{}, fmt.Errorf("analyze %s: %w", tbl.Name, err)
	}
	return File{
		ID:        uuid.NewString(),
		Name:      tbl.Name,
		Path:      tbl.Path,
		Size:      tbl.Size,
		FileType:  tbl.Format,
		Rows:      len(tbl.Rows),
		Columns:   columns.Attach(cols, analyses),
		CreatedAt: time.Now(),
	}, nil
}

// AnalyzeFile loads path and analyzes it.
func AnalyzeFile(path string, opt Options) (File, error) {
	tbl, err := loader.LoadFile(path, opt.Load)
	if err != nil {
		return File{}, err
	}
	return AnalyzeTable(tbl, opt)
}

// Build analyzes every path into one dataset. Files sharing a base name are
// analyzed once, keeping the first. Files are analyzed concurrently, each as
// a single unit; the dataset lists them in argument order.
func Build(ctx context.Context, name string, paths []string, opt Options) (*Dataset, error) {
	var unique []string
	seen := map[string]struct{}{}
	for _, p := range paths {
		base := filepath.Base(p)
		if _, ok := seen[base]; ok {
			log.Warn().Str("file", p).Msg("skipping duplicate file name")
			continue
		}
		seen[base] = struct{}{}
		unique = append(unique, p)
	}

	jobs := opt.Jobs
	if jobs <= 0 {
		jobs = 1
	}
	files := make([]File, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, p := range unique {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			f, err := AnalyzeFile(p, opt)
			if err != nil {
				return err
			}
			log.Debug().Str("file", f.Name).Int("rows", f.Rows).Dur("elapsed", time.Since(start)).Msg("analyzed file")
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := NewDataset(name)
	for _, f := range files {
		ds.AddFile(f)
	}
	return ds, nil
}
