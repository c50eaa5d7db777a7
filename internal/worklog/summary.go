package worklog

import "strings"

// NoDetailsSentinel is returned by SummaryText when no hour carries any
// loggable detail.
const NoDetailsSentinel = "No details logged."

// SummaryText renders the records as a plain-text summary, omitting hours
// with no meeting, no tasks, and no general text. This is the rendering
// stored in the work_logs table.
func SummaryText(records []FlatRecord) string {
	var blocks []string
	for _, r := range records {
		meetingInfo := strings.TrimSpace(r.MeetingInfo)
		tasks := strings.TrimSpace(r.Tasks)
		general := strings.TrimSpace(r.General)

		if r.Meeting == "No" && tasks == "" && general == "" {
			continue
		}

		lines := []string{
			"Time: " + r.Time,
			"Meeting: " + r.Meeting,
		}
		if r.Meeting == "Yes" && meetingInfo != "" {
			lines = append(lines, "Meeting Info: "+meetingInfo)
		}
		if tasks != "" {
			lines = append(lines, "Tasks: "+tasks)
		}
		if general != "" {
			lines = append(lines, "General Info: "+general)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	if len(blocks) == 0 {
		return NoDetailsSentinel
	}
	return strings.Join(blocks, "\n\n")
}
