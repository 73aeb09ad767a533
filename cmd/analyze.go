package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/colprofile/internal/columns"
	"github.com/KaramelBytes/colprofile/internal/documents"
	"github.com/KaramelBytes/colprofile/internal/loader"
	"github.com/KaramelBytes/colprofile/internal/utils"
	"github.com/spf13/cobra"
)

var (
	anaName       string
	anaFormat     string
	anaOutputPath string
	anaDelimiter  string
	anaSheetName  string
	anaIDColumns  []string
	anaTypes      map[string]string
	anaJobs       int
	anaDesc       string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <files...>",
	Short: "Analyze CSV/TSV/JSON/XLSX files and print a dataset document",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := currentConfig()
		opt := documents.Options{IDColumns: c.IDColumns, Jobs: c.Jobs}

		delim := c.Delimiter
		if cmd.Flags().Changed("delimiter") {
			delim = anaDelimiter
		}
		r, err := parseDelimiter(delim)
		if err != nil {
			return err
		}
		opt.Load.Delimiter = r
		opt.Load.Sheet = c.Sheet
		if cmd.Flags().Changed("sheet") {
			opt.Load.Sheet = anaSheetName
		}
		if cmd.Flags().Changed("id-columns") {
			opt.IDColumns = anaIDColumns
		}
		if cmd.Flags().Changed("jobs") {
			opt.Jobs = anaJobs
		}
		if len(anaTypes) > 0 {
			opt.Types = make(map[string]columns.Type, len(anaTypes))
			for name, raw := range anaTypes {
				t, err := columns.ParseType(raw)
				if err != nil {
					return fmt.Errorf("--type %s: %w", name, err)
				}
				opt.Types[name] = t
			}
		}

		formatName := c.OutputFormat
		if cmd.Flags().Changed("format") {
			formatName = anaFormat
		}
		format, err := documents.ParseFormat(formatName)
		if err != nil {
			return err
		}

		for _, p := range args {
			if !loader.Supported(p) {
				return fmt.Errorf("unsupported file: %s (use .csv, .tsv, .json or .xlsx)", p)
			}
		}

		name := anaName
		if name == "" {
			base := filepath.Base(args[0])
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}
		ds, err := documents.Build(context.Background(), name, args, opt)
		if err != nil {
			return err
		}
		if anaDesc != "" {
			for i := range ds.Files {
				ds.Files[i].Description = anaDesc
			}
		}
		out, err := documents.Render(ds, format)
		if err != nil {
			return err
		}

		// Decide where to write: --output path, configured output_dir, or stdout
		dest := anaOutputPath
		if dest == "" && c.OutputDir != "" {
			dest = filepath.Join(c.OutputDir, name+format.Ext())
		}
		if dest == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}
		if err := utils.SafeWriteFile(dest, out); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote analysis of %d file(s) to %s\n", len(ds.Files), dest)
		return nil
	},
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	case "|", "pipe":
		return '|', nil
	}
	return 0, fmt.Errorf("unsupported --delimiter: %s", s)
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaName, "name", "n", "", "dataset name (default: first file's base name)")
	analyzeCmd.Flags().StringVarP(&anaFormat, "format", "f", "json", "output format: json|yaml|markdown")
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the result")
	analyzeCmd.Flags().StringVar(&anaDesc, "desc", "", "description stored on every file document")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' | 'pipe'")
	analyzeCmd.Flags().StringVar(&anaSheetName, "sheet", "", "XLSX: sheet name to analyze (default: first sheet)")
	analyzeCmd.Flags().StringSliceVar(&anaIDColumns, "id-columns", nil, "header names treated as ID columns (overrides config)")
	analyzeCmd.Flags().StringToStringVar(&anaTypes, "type", nil, "force column types, e.g. --type zip=STRING,score=NUMBER")
	analyzeCmd.Flags().IntVarP(&anaJobs, "jobs", "j", 4, "files analyzed concurrently")
}
