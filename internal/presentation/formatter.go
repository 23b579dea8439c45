package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/xivtypes/internal/log"
)

// Supported output formats.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	format string
}

// NewFormatter creates a new formatter. Unknown formats fall back to YAML.
func NewFormatter(writer io.Writer, format string) *Formatter {
	format = strings.ToLower(format)
	switch format {
	case FormatJSON, FormatYAML, FormatTable:
	default:
		log.Warn(log.CatOutput, "Unknown output format, using yaml", "format", format)
		format = FormatYAML
	}
	return &Formatter{
		writer: writer,
		format: format,
	}
}

// Format returns the effective output format.
func (f *Formatter) Format() string { return f.format }

// FormatVariants formats a list of variants.
func (f *Formatter) FormatVariants(variants []VariantDTO) error {
	if f.format == FormatTable {
		return writeTable(f.writer, variants)
	}
	return f.encode(variants)
}

// FormatVariant formats a single variant.
func (f *Formatter) FormatVariant(variant VariantDTO) error {
	if f.format == FormatTable {
		return writeTable(f.writer, []VariantDTO{variant})
	}
	return f.encode(variant)
}

// FormatSnapshot formats a whole snapshot. Tables get one section per domain.
func (f *Formatter) FormatSnapshot(snap SnapshotDTO) error {
	if f.format != FormatTable {
		return f.encode(snap)
	}
	if _, err := fmt.Fprintf(f.writer, "patch %s\n", snap.Patch); err != nil {
		return err
	}
	for _, d := range snap.Domains {
		if _, err := fmt.Fprintf(f.writer, "\n%s (%d)\n", d.Name, len(d.Variants)); err != nil {
			return err
		}
		if err := writeTable(f.writer, d.Variants); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) encode(v any) error {
	if f.format == FormatJSON {
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	}
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// MarshalSnapshotYAML renders snap the way the dump command writes it.
// diff compares against this form.
func MarshalSnapshotYAML(snap SnapshotDTO) (string, error) {
	var b strings.Builder
	if err := NewFormatter(&b, FormatYAML).FormatSnapshot(snap); err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	return b.String(), nil
}

// ParseSnapshotYAML decodes a dump produced by an earlier build.
func ParseSnapshotYAML(data []byte) (SnapshotDTO, error) {
	var snap SnapshotDTO
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return SnapshotDTO{}, fmt.Errorf("parsing snapshot dump: %w", err)
	}
	if snap.Patch == "" || len(snap.Domains) == 0 {
		return SnapshotDTO{}, fmt.Errorf("parsing snapshot dump: missing patch or domains")
	}
	return snap, nil
}
