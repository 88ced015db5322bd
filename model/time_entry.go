package model

import "time"

// TimeEntry is a time-tracking record. Unlike most resources its scalar
// fields default to concrete values instead of unset.
type TimeEntry struct {
	ID          string `json:"id"`
	Task        *Task  `json:"task,omitzero"`
	WID         string `json:"wid"`
	User        *User  `json:"user,omitzero"`
	Billable    bool   `json:"billable"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Duration    *int64 `json:"duration,omitzero"`
	Description string `json:"description"`
	Tags        []Tag  `json:"tags,omitzero"`
	Source      string `json:"source"`
	At          string `json:"at"`
}

func DecodeTimeEntry(raw map[string]any) (TimeEntry, error) {
	d := newDecoder("time_entry", raw)
	e := TimeEntry{
		ID:          d.StringOr("id", ""),
		Task:        object(d, "task", DecodeTask),
		WID:         d.StringOr("wid", ""),
		User:        object(d, "user", DecodeUser),
		Billable:    d.BoolOr("billable", false),
		Start:       d.StringOr("start", ""),
		End:         d.StringOr("end", ""),
		Duration:    d.Int64("duration"),
		Description: d.StringOr("description", ""),
		Tags:        list(d, "tags", DecodeTag),
		Source:      d.StringOr("source", ""),
		At:          d.StringOr("at", ""),
	}
	if err := d.Err(); err != nil {
		return TimeEntry{}, err
	}
	return e, nil
}

// Running reports whether the entry is an active timer. ClickUp marks
// those with a negative duration.
func (e TimeEntry) Running() bool {
	return e.Duration != nil && *e.Duration < 0
}

// Elapsed is the tracked duration; zero when unset or still running.
func (e TimeEntry) Elapsed() time.Duration {
	if e.Duration == nil || *e.Duration < 0 {
		return 0
	}
	return time.Duration(*e.Duration) * time.Millisecond
}

// DecodeSingleTimeEntry reads the {"data": {...}} envelope returned for one
// entry. A missing or null envelope gives nil.
func DecodeSingleTimeEntry(raw map[string]any) (*TimeEntry, error) {
	d := newDecoder("time_entry_single", raw)
	e := object(d, "data", DecodeTimeEntry)
	if err := d.Err(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *TimeEntry) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, e, DecodeTimeEntry)
}
