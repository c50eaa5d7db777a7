package export

import (
	"strings"

	"github.com/vishnumuthyalu/WorkLogger/internal/worklog"
)

// ToPlainText renders every record as a labeled block, one block per hour
// with a blank line between. Time and Meeting always appear; the free-text
// lines appear only when applicable and non-blank.
func ToPlainText(records []worklog.FlatRecord) []byte {
	blocks := make([]string, 0, len(records))
	for _, r := range records {
		lines := []string{
			"Time: " + r.Time,
			"Meeting: " + r.Meeting,
		}
		if info := strings.TrimSpace(r.MeetingInfo); r.Meeting == "Yes" && info != "" {
			lines = append(lines, "Meeting Info: "+info)
		}
		if tasks := strings.TrimSpace(r.Tasks); tasks != "" {
			lines = append(lines, "Tasks: "+tasks)
		}
		if general := strings.TrimSpace(r.General); general != "" {
			lines = append(lines, "General Info: "+general)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return []byte(strings.Join(blocks, "\n\n"))
}
