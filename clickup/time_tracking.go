package clickup

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/roksva123/go-clickup/model"
)

// TimeEntryQuery bounds GetTimeEntriesInRange. ClickUp defaults to the last
// 30 days of the authenticated user's entries when Start and End are nil.
type TimeEntryQuery struct {
	Start     *int64
	End       *int64
	Assignees []int64
}

func (q TimeEntryQuery) values() url.Values {
	v := url.Values{}
	if q.Start != nil {
		v.Set("start_date", strconv.FormatInt(*q.Start, 10))
	}
	if q.End != nil {
		v.Set("end_date", strconv.FormatInt(*q.End, 10))
	}
	if len(q.Assignees) > 0 {
		ids := make([]string, len(q.Assignees))
		for i, a := range q.Assignees {
			ids[i] = strconv.FormatInt(a, 10)
		}
		v.Set("assignee", strings.Join(ids, ","))
	}
	return v
}

func (c *Client) GetTimeEntriesInRange(ctx context.Context, teamID string, q TimeEntryQuery) (*model.TimeEntries, error) {
	raw, err := c.get(ctx, path("team", teamID, "time_entries"), q.values())
	if err != nil {
		return nil, err
	}
	return model.NewTimeEntries(raw)
}

// GetSingleTimeEntry returns nil when ClickUp has no entry under the id.
func (c *Client) GetSingleTimeEntry(ctx context.Context, teamID, timerID string) (*model.TimeEntry, error) {
	raw, err := c.get(ctx, path("team", teamID, "time_entries", timerID), nil)
	if err != nil {
		return nil, err
	}
	return model.DecodeSingleTimeEntry(raw)
}

// StartTimer starts the authenticated user's timer on a task.
func (c *Client) StartTimer(ctx context.Context, teamID, taskID string) (*model.TimeEntry, error) {
	body := struct {
		TaskID string `json:"tid"`
	}{taskID}
	raw, err := c.post(ctx, path("team", teamID, "time_entries", "start"), body)
	if err != nil {
		return nil, err
	}
	return model.DecodeSingleTimeEntry(raw)
}

func (c *Client) StopTimer(ctx context.Context, teamID string) (*model.TimeEntry, error) {
	raw, err := c.post(ctx, path("team", teamID, "time_entries", "stop"), nil)
	if err != nil {
		return nil, err
	}
	return model.DecodeSingleTimeEntry(raw)
}

func (c *Client) DeleteTimeEntry(ctx context.Context, teamID, timerID string) error {
	return c.delete(ctx, path("team", teamID, "time_entries", timerID), nil)
}
