// Package export renders report sections of the business dataset as downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/argos/backend/internal/domain/analytics"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/xuri/excelize/v2"
)

// Format is an export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ReportName is the title carried by every export
const ReportName = "Argos - Relatório Executivo"

// ErrUnknownFormat is returned for formats other than csv, json and xlsx
var ErrUnknownFormat = shared.NewDomainError("INVALID_FORMAT", "Export format must be csv, json or xlsx")

// ParseFormat validates a format name; the empty string means csv
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	}
	return "", ErrUnknownFormat
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Filename returns the download name for an export generated at now
func (f Format) Filename(now time.Time) string {
	return fmt.Sprintf("argos-relatorio-%s.%s", now.Format("2006-01-02"), f)
}

// File is an encoded export
type File struct {
	Format      Format
	Filename    string
	ContentType string
	Data        []byte
}

// Encode renders sections of d in format. Sections are written in the order given.
func Encode(d *analytics.Dataset, sections []analytics.SectionID, format Format, now time.Time) (*File, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatCSV:
		data, err = encodeCSV(d, sections)
	case FormatJSON:
		data, err = encodeJSON(d, sections, now)
	case FormatXLSX:
		data, err = encodeXLSX(d, sections)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, err
	}
	return &File{
		Format:      format,
		Filename:    format.Filename(now),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

// encodeCSV writes one "=== HEADING ===" block per section followed by a blank line
func encodeCSV(d *analytics.Dataset, sections []analytics.SectionID) ([]byte, error) {
	var buf bytes.Buffer
	for _, id := range sections {
		table, err := d.Table(id)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "=== %s ===\n", table.Section.Heading)

		w := csv.NewWriter(&buf)
		if err := w.Write(table.Headers); err != nil {
			return nil, fmt.Errorf("failed to write csv header: %w", err)
		}
		if err := w.WriteAll(table.Rows); err != nil {
			return nil, fmt.Errorf("failed to write csv rows: %w", err)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

type jsonReport struct {
	ExportDate string                       `json:"exportDate"`
	Report     string                       `json:"report"`
	Sections   map[analytics.SectionID]any `json:"sections"`
}

func encodeJSON(d *analytics.Dataset, sections []analytics.SectionID, now time.Time) ([]byte, error) {
	report := jsonReport{
		ExportDate: now.UTC().Format(time.RFC3339),
		Report:     ReportName,
		Sections:   make(map[analytics.SectionID]any, len(sections)),
	}
	for _, id := range sections {
		records, err := d.Records(id)
		if err != nil {
			return nil, err
		}
		report.Sections[id] = records
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json export: %w", err)
	}
	return data, nil
}

// encodeXLSX writes one worksheet per section with a bold header row
func encodeXLSX(d *analytics.Dataset, sections []analytics.SectionID) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, id := range sections {
		table, err := d.Table(id)
		if err != nil {
			return nil, err
		}
		sheet := SheetName(table.Section.Label)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}

		if err := f.SetSheetRow(sheet, "A1", &table.Headers); err != nil {
			return nil, fmt.Errorf("failed to write header of %s: %w", sheet, err)
		}
		last, _ := excelize.CoordinatesToCellName(len(table.Headers), 1)
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header of %s: %w", sheet, err)
		}
		for r, row := range table.Rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return nil, fmt.Errorf("failed to write row %d of %s: %w", r+1, sheet, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode xlsx export: %w", err)
	}
	return buf.Bytes(), nil
}

// SheetName makes label a valid worksheet name: no []:*?/\ and at most 31 characters
func SheetName(label string) string {
	out := make([]rune, 0, len(label))
	for _, r := range label {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			continue
		}
		out = append(out, r)
		if len(out) == 31 {
			break
		}
	}
	return string(out)
}
