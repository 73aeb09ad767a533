package documents

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KaramelBytes/colprofile/internal/columns"
	"github.com/KaramelBytes/colprofile/internal/utils"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Format selects how a dataset is rendered.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts json, yaml/yml and markdown/md.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unsupported format: %s (use json|yaml|markdown)", s)
}

// Ext is the file extension used when writing a rendered dataset.
func (f Format) Ext() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatMarkdown:
		return ".md"
	}
	return ".json"
}

// Render encodes the dataset. JSON and YAML keep the escaped frequency keys.
func Render(d *Dataset, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return utils.PrettyJSON(d)
	case FormatYAML:
		b, err := yaml.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return b, nil
	case FormatMarkdown:
		return []byte(d.Markdown()), nil
	}
	return nil, fmt.Errorf("unsupported format: %s", f)
}

// topValues caps the frequency entries listed per column.
const topValues = 8

// Markdown renders a compact summary for reading.
func (d *Dataset) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if d.Name != "" {
		b.WriteString(fmt.Sprintf("Dataset: %s\n", d.Name))
	}
	b.WriteString(fmt.Sprintf("Files: %d", len(d.Files)))
	if len(d.Summary.FileTypes) > 0 {
		b.WriteString(fmt.Sprintf(" (%s)", strings.Join(d.Summary.FileTypes, ", ")))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Size: %s\n", humanize.Bytes(uint64(d.Size))))

	for _, f := range d.Files {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("[FILE] %s\n", f.Name))
		b.WriteString(fmt.Sprintf("Rows: %d\n", f.Rows))
		b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(f.Columns)))
		b.WriteString("[SCHEMA]\n")
		for _, c := range f.Columns {
			writeColumn(&b, c)
		}
	}
	return b.String()
}

func writeColumn(b *strings.Builder, c columns.AnalyzedColumn) {
	a := c.Analysis
	b.WriteString(fmt.Sprintf("- %s: %s (valid %d, missing %d, wrong type %d, distinct %d)",
		safeName(c.Name), c.Type, a.Valid, a.Missing, a.WrongType, a.Distinct))
	if a.Valid > 0 {
		b.WriteString(fmt.Sprintf(" — mode %s (%.0f%%)", safeVal(a.Mode), a.ModeRatio*100))
	}
	if a.Quartiles != nil {
		b.WriteString(fmt.Sprintf("; min %.4g, max %.4g, range %.4g, mean %.4g, std %.4g, var %.4g; q1 %.4g, q2 %.4g, q3 %.4g",
			a.Min, a.Max, a.Range, a.Mean, a.StdDev, a.Variance, a.Quartiles.Q1, a.Quartiles.Q2, a.Quartiles.Q3))
	}
	b.WriteString("\n")
	if tops := topEntries(a.Frequencies, topValues); len(tops) > 0 {
		b.WriteString("  top: ")
		for i, e := range tops {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%s(%d)", safeVal(columns.RestoreKey(e.Key)), e.Count))
		}
		if a.Distinct > len(tops) {
			b.WriteString(fmt.Sprintf("; +%d more", a.Distinct-len(tops)))
		}
		b.WriteString("\n")
	}
}

// topEntries returns the n most frequent entries; equal counts keep table order.
func topEntries(t *columns.FrequencyTable, n int) []columns.Entry {
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
