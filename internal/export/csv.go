// Package export renders stored compliance results into the filing artifacts:
// CSV registers for download and xlsx workbooks for the statutory portals.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"anupalan/internal/port"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var contributionColumns = []string{
	"Employee Code",
	"Employee Name",
	"Wages",
	"Employee Contribution",
	"Employer Contribution",
	"Total Contribution",
}

// CSVWriter wraps csv.Writer for exporting contribution registers.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the register header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(contributionColumns)
}

// WriteLines converts contribution lines to CSV rows and writes them.
func (w *CSVWriter) WriteLines(lines []port.ContributionLine) error {
	for i := range lines {
		if err := w.csv.Write(lineToRow(&lines[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

func lineToRow(l *port.ContributionLine) []string {
	return []string{
		l.EmployeeCode,
		l.EmployeeName,
		l.Wages.StringFixed(2),
		l.EmployeeContribution.StringFixed(2),
		l.EmployerContribution.StringFixed(2),
		l.TotalContribution.StringFixed(2),
	}
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a report name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, ext)
}
