// Package worklog provides the core data model for daily work logs:
// per-hour entries keyed by hour label, the session state that holds them,
// and the flat projection consumed by the export and persistence layers.
package worklog

import "time"

// HourEntry holds the user input for a single hour slot.
type HourEntry struct {
	Meeting     bool
	MeetingInfo string
	Tasks       string
	General     string
}

// Identity identifies one editable work log instance: the calendar date
// plus the configured hour range. Distinct identities never share entries.
type Identity struct {
	Date      string // YYYY-MM-DD
	StartHour int
	EndHour   int
}

// NewIdentity builds an Identity for the given date and hour range.
func NewIdentity(date time.Time, startHour, endHour int) Identity {
	return Identity{
		Date:      date.Format("2006-01-02"),
		StartHour: startHour,
		EndHour:   endHour,
	}
}

// FlatRecord is the read-only projection of one HourEntry plus its hour
// label. Meeting is "Yes" or "No"; MeetingInfo is forced empty when no
// meeting occurred, even if stale text is still stored.
type FlatRecord struct {
	Time        string
	Meeting     string
	MeetingInfo string
	Tasks       string
	General     string
}

// Columns is the fixed column order shared by the CSV and DOCX exports.
var Columns = []string{"Time", "Meeting", "Meeting Information", "Tasks", "General Information"}

// Values returns the record fields in Columns order.
func (r FlatRecord) Values() []string {
	return []string{r.Time, r.Meeting, r.MeetingInfo, r.Tasks, r.General}
}

// Session owns the in-memory entry maps for all log identities touched
// during one interactive session. It is constructed and discarded by the
// hosting surface; nothing here persists until explicitly saved.
type Session struct {
	logs map[Identity]map[string]*HourEntry
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{logs: make(map[Identity]map[string]*HourEntry)}
}

// Initialize creates a default entry for every hour label under the given
// identity. Calling it again for an existing identity is a no-op, so user
// input entered between calls is never reset.
func (s *Session) Initialize(id Identity, labels []string) {
	if _, ok := s.logs[id]; ok {
		return
	}
	entries := make(map[string]*HourEntry, len(labels))
	for _, label := range labels {
		entries[label] = &HourEntry{}
	}
	s.logs[id] = entries
}

// Entry returns the mutable entry for an hour label, or nil if the
// identity was never initialized or the label is not part of it.
func (s *Session) Entry(id Identity, label string) *HourEntry {
	entries, ok := s.logs[id]
	if !ok {
		return nil
	}
	return entries[label]
}

// Project flattens the identity's entries into one FlatRecord per hour
// label, in label order. It is a pure read of current state.
func (s *Session) Project(id Identity, labels []string) []FlatRecord {
	entries := s.logs[id]
	records := make([]FlatRecord, 0, len(labels))
	for _, label := range labels {
		e := entries[label]
		if e == nil {
			e = &HourEntry{}
		}
		rec := FlatRecord{
			Time:    label,
			Meeting: "No",
			Tasks:   e.Tasks,
			General: e.General,
		}
		if e.Meeting {
			rec.Meeting = "Yes"
			rec.MeetingInfo = e.MeetingInfo
		}
		records = append(records, rec)
	}
	return records
}
