package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/roksva123/go-clickup/clickup"
)

const (
	CategoryUnderload   = "underload"
	CategoryBelowNormal = "below_normal"
	CategoryNormal      = "normal"
	CategoryAboveNormal = "above_normal"
	CategoryOverload    = "overload"
)

// Bands are weekly hour thresholds.
type Bands struct {
	Underload float64
	NormalMin float64
	NormalMax float64
	Overload  float64
}

func (b Bands) Classify(weeklyHours float64) string {
	switch {
	case weeklyHours <= b.Underload:
		return CategoryUnderload
	case weeklyHours >= b.Overload:
		return CategoryOverload
	case weeklyHours < b.NormalMin:
		return CategoryBelowNormal
	case weeklyHours > b.NormalMax:
		return CategoryAboveNormal
	default:
		return CategoryNormal
	}
}

type UserWorkload struct {
	UserID      int64   `json:"user_id"`
	Username    string  `json:"username"`
	Entries     int     `json:"entries"`
	TotalHours  float64 `json:"total_hours"`
	WeeklyHours float64 `json:"weekly_hours"`
	Category    string  `json:"category"`
}

type WorkloadService struct {
	Click ClickUp
	Bands Bands
}

func NewWorkloadService(click ClickUp, bands Bands) *WorkloadService {
	return &WorkloadService{Click: click, Bands: bands}
}

// Summarize totals tracked time per user between start and end and rates it
// against the weekly bands. Running timers and entries without a user are
// skipped.
func (s *WorkloadService) Summarize(ctx context.Context, teamID string, start, end time.Time, assignees []int64) ([]UserWorkload, error) {
	if teamID == "" {
		return nil, errors.New("team id not configured")
	}
	if end.Before(start) {
		return nil, errors.New("end is before start")
	}

	entries, err := s.Click.GetTimeEntriesInRange(ctx, teamID, clickup.TimeEntryQuery{
		Start:     clickup.Millis(start),
		End:       clickup.Millis(end),
		Assignees: assignees,
	})
	if err != nil {
		return nil, err
	}

	byUser := map[int64]*UserWorkload{}
	for e := range entries.Values() {
		if e.User == nil || e.Running() {
			continue
		}
		w, ok := byUser[e.User.ID]
		if !ok {
			w = &UserWorkload{UserID: e.User.ID, Username: e.User.Username}
			byUser[e.User.ID] = w
		}
		w.Entries++
		w.TotalHours += e.Elapsed().Hours()
	}

	weeks := float64(WorkingDaysBetween(start, end)) / 5
	out := make([]UserWorkload, 0, len(byUser))
	for _, w := range byUser {
		w.WeeklyHours = w.TotalHours
		if weeks > 0 {
			w.WeeklyHours = w.TotalHours / weeks
		}
		w.Category = s.Bands.Classify(w.WeeklyHours)
		out = append(out, *w)
	}
	slices.SortFunc(out, func(a, b UserWorkload) int {
		return strings.Compare(a.Username, b.Username)
	})
	return out, nil
}

// WorkingDaysBetween counts the weekdays from start to end, both included.
func WorkingDaysBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}

	start = start.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}
