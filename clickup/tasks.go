package clickup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/roksva123/go-clickup/model"
)

// TaskQuery filters GetTasks. Zero values are left out of the request.
type TaskQuery struct {
	Archived      bool
	IncludeClosed bool
	Subtasks      bool
	Reverse       bool
	Page          int
	OrderBy       string
	Statuses      []string
	Assignees     []string
	Tags          []string
	DueDateGt     *int64
	DueDateLt     *int64
}

func (q TaskQuery) values() url.Values {
	v := url.Values{}
	v.Set("archived", strconv.FormatBool(q.Archived))
	v.Set("page", strconv.Itoa(q.Page))
	if q.IncludeClosed {
		v.Set("include_closed", "true")
	}
	if q.Subtasks {
		v.Set("subtasks", "true")
	}
	if q.Reverse {
		v.Set("reverse", "true")
	}
	if q.OrderBy != "" {
		v.Set("order_by", q.OrderBy)
	}
	for _, s := range q.Statuses {
		v.Add("statuses[]", s)
	}
	for _, a := range q.Assignees {
		v.Add("assignees[]", a)
	}
	for _, t := range q.Tags {
		v.Add("tags[]", t)
	}
	if q.DueDateGt != nil {
		v.Set("due_date_gt", strconv.FormatInt(*q.DueDateGt, 10))
	}
	if q.DueDateLt != nil {
		v.Set("due_date_lt", strconv.FormatInt(*q.DueDateLt, 10))
	}
	return v
}

// CreateTaskRequest is the body for CreateTask. Priority runs from 1
// (urgent) to 4 (low); zero leaves it unset.
type CreateTaskRequest struct {
	Name                string   `json:"name"`
	Description         string   `json:"description,omitempty"`
	MarkdownDescription string   `json:"markdown_description,omitempty"`
	Assignees           []int64  `json:"assignees,omitempty"`
	Tags                []string `json:"tags,omitempty"`
	Status              string   `json:"status,omitempty"`
	Priority            int      `json:"priority,omitempty"`
	DueDate             *int64   `json:"due_date,omitempty"`
	DueDateTime         bool     `json:"due_date_time,omitempty"`
	StartDate           *int64   `json:"start_date,omitempty"`
	TimeEstimate        *int64   `json:"time_estimate,omitempty"`
	Parent              string   `json:"parent,omitempty"`
	NotifyAll           bool     `json:"notify_all,omitempty"`
}

// AssigneeChange adds and removes task assignees by user id.
type AssigneeChange struct {
	Add []int64 `json:"add,omitempty"`
	Rem []int64 `json:"rem,omitempty"`
}

// UpdateTaskRequest holds the task fields to change. Nil pointers and empty
// strings are left untouched.
type UpdateTaskRequest struct {
	Name         string          `json:"name,omitempty"`
	Description  string          `json:"description,omitempty"`
	Status       string          `json:"status,omitempty"`
	Priority     *int            `json:"priority,omitempty"`
	DueDate      *int64          `json:"due_date,omitempty"`
	StartDate    *int64          `json:"start_date,omitempty"`
	TimeEstimate *int64          `json:"time_estimate,omitempty"`
	Parent       string          `json:"parent,omitempty"`
	Archived     *bool           `json:"archived,omitempty"`
	Assignees    *AssigneeChange `json:"assignees,omitempty"`
}

func checkPriority(p int) error {
	if p < 0 || p > 4 {
		return &Error{Message: fmt.Sprintf("priority must be between 0 (unset) and 4, got %d", p)}
	}
	return nil
}

func (c *Client) GetTask(ctx context.Context, taskID string) (model.Task, error) {
	raw, err := c.get(ctx, path("task", taskID), nil)
	if err != nil {
		return model.Task{}, err
	}
	return model.DecodeTask(raw)
}

// GetTasks returns one page of the tasks in a list.
func (c *Client) GetTasks(ctx context.Context, listID string, q TaskQuery) (*model.Tasks, error) {
	raw, err := c.get(ctx, path("list", listID, "task"), q.values())
	if err != nil {
		return nil, err
	}
	return model.NewTasks(raw)
}

// GetTeamTasks returns one page of the tasks across a workspace.
func (c *Client) GetTeamTasks(ctx context.Context, teamID string, page int) (*model.Tasks, error) {
	raw, err := c.get(ctx, path("team", teamID, "task"), url.Values{"page": {strconv.Itoa(page)}})
	if err != nil {
		return nil, err
	}
	return model.NewTasks(raw)
}

// GetAllTeamTasks walks the workspace task pages until an empty one.
func (c *Client) GetAllTeamTasks(ctx context.Context, teamID string) ([]model.Task, error) {
	var all []model.Task
	for page := 0; ; page++ {
		tasks, err := c.GetTeamTasks(ctx, teamID, page)
		if err != nil {
			return all, fmt.Errorf("team %s tasks page %d: %w", teamID, page, err)
		}
		c.logf("[PAGE %d] found %d tasks", page, tasks.Len())
		if tasks.Len() == 0 {
			return all, nil
		}
		all = append(all, tasks.Items()...)
	}
}

func (c *Client) CreateTask(ctx context.Context, listID string, req CreateTaskRequest) (model.Task, error) {
	if req.Name == "" {
		return model.Task{}, &Error{Message: "task name is required"}
	}
	if err := checkPriority(req.Priority); err != nil {
		return model.Task{}, err
	}
	raw, err := c.post(ctx, path("list", listID, "task"), req)
	if err != nil {
		return model.Task{}, err
	}
	return model.DecodeTask(raw)
}

func (c *Client) UpdateTask(ctx context.Context, taskID string, req UpdateTaskRequest) (model.Task, error) {
	if req.Priority != nil {
		if err := checkPriority(*req.Priority); err != nil {
			return model.Task{}, err
		}
	}
	raw, err := c.put(ctx, path("task", taskID), req)
	if err != nil {
		return model.Task{}, err
	}
	return model.DecodeTask(raw)
}

func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.delete(ctx, path("task", taskID), nil)
}

// UploadAttachment sends r as a multipart file named filename.
func (c *Client) UploadAttachment(ctx context.Context, taskID, filename string, r io.Reader) (model.Attachment, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("attachment", filename)
	if err != nil {
		return model.Attachment{}, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return model.Attachment{}, fmt.Errorf("read attachment %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return model.Attachment{}, err
	}

	raw, err := c.send(ctx, http.MethodPost, path("task", taskID, "attachment"), nil, &buf, w.FormDataContentType())
	if err != nil {
		return model.Attachment{}, err
	}
	return model.DecodeAttachment(raw)
}
