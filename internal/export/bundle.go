package export

import (
	"time"

	"github.com/vishnumuthyalu/WorkLogger/internal/timeutil"
	"github.com/vishnumuthyalu/WorkLogger/internal/worklog"
)

// MIME types for the three export formats.
const (
	MIMECSV  = "text/csv"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEText = "text/plain"
)

// File represents one exported payload with its download name and MIME
// type split into major/minor parts for the mail dispatcher.
type File struct {
	Name      string
	Data      []byte
	MIMEMajor string
	MIMEMinor string
}

// MIMEType returns the full "major/minor" content type.
func (f File) MIMEType() string {
	return f.MIMEMajor + "/" + f.MIMEMinor
}

// Bundle groups the three export payloads for one log date.
type Bundle struct {
	CSV  File
	Docx File
	Text File
}

// Files returns the bundle contents in a stable order.
func (b Bundle) Files() []File {
	return []File{b.CSV, b.Docx, b.Text}
}

// FileName derives an export file name from the log date,
// e.g. "Friday_March_14_2025_daily_work_log.csv".
func FileName(logDate time.Time, extension string) string {
	return timeutil.FileDate(logDate) + "_daily_work_log." + extension
}

// NewBundle converts the records into all three export formats.
func NewBundle(records []worklog.FlatRecord, logDate time.Time) (Bundle, error) {
	csvData, err := ToCSV(records)
	if err != nil {
		return Bundle{}, err
	}
	docxData, err := ToDocx(records, logDate)
	if err != nil {
		return Bundle{}, err
	}

	return Bundle{
		CSV: File{
			Name:      FileName(logDate, "csv"),
			Data:      csvData,
			MIMEMajor: "text",
			MIMEMinor: "csv",
		},
		Docx: File{
			Name:      FileName(logDate, "docx"),
			Data:      docxData,
			MIMEMajor: "application",
			MIMEMinor: "vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
		Text: File{
			Name:      FileName(logDate, "txt"),
			Data:      ToPlainText(records),
			MIMEMajor: "text",
			MIMEMinor: "plain",
		},
	}, nil
}
