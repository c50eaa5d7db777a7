// Package export converts flattened work log records into downloadable
// byte payloads: CSV, DOCX, and plain text. All converters are pure
// functions of their input.
package export

import (
	"bytes"
	"encoding/csv"

	"github.com/vishnumuthyalu/WorkLogger/internal/worklog"
)

// ToCSV renders the records as UTF-8 CSV bytes: a header row followed by
// one row per hour, in the fixed column order. encoding/csv handles
// quoting of embedded delimiters and newlines.
func ToCSV(records []worklog.FlatRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(worklog.Columns); err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := w.Write(r.Values()); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
