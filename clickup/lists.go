package clickup

import (
	"context"
	"net/url"
	"strconv"

	"github.com/roksva123/go-clickup/model"
)

// ListRequest is the body for creating or updating a list.
type ListRequest struct {
	Name        string `json:"name,omitempty"`
	Content     string `json:"content,omitempty"`
	DueDate     *int64 `json:"due_date,omitempty"`
	DueDateTime bool   `json:"due_date_time,omitempty"`
	Priority    int    `json:"priority,omitempty"`
	Assignee    int64  `json:"assignee,omitempty"`
	Status      string `json:"status,omitempty"`
}

func archived(v bool) url.Values {
	return url.Values{"archived": {strconv.FormatBool(v)}}
}

func (c *Client) GetList(ctx context.Context, listID string) (model.List, error) {
	raw, err := c.get(ctx, path("list", listID), nil)
	if err != nil {
		return model.List{}, err
	}
	return model.DecodeList(raw)
}

// GetLists returns the lists inside a folder.
func (c *Client) GetLists(ctx context.Context, folderID string, includeArchived bool) (*model.Lists, error) {
	raw, err := c.get(ctx, path("folder", folderID, "list"), archived(includeArchived))
	if err != nil {
		return nil, err
	}
	return model.NewLists(raw)
}

// GetFolderlessLists returns the lists that sit directly in a space.
func (c *Client) GetFolderlessLists(ctx context.Context, spaceID string, includeArchived bool) (*model.Lists, error) {
	raw, err := c.get(ctx, path("space", spaceID, "list"), archived(includeArchived))
	if err != nil {
		return nil, err
	}
	return model.NewLists(raw)
}

func (c *Client) CreateList(ctx context.Context, folderID string, req ListRequest) (model.List, error) {
	if req.Name == "" {
		return model.List{}, &Error{Message: "list name is required"}
	}
	raw, err := c.post(ctx, path("folder", folderID, "list"), req)
	if err != nil {
		return model.List{}, err
	}
	return model.DecodeList(raw)
}

func (c *Client) CreateFolderlessList(ctx context.Context, spaceID string, req ListRequest) (model.List, error) {
	if req.Name == "" {
		return model.List{}, &Error{Message: "list name is required"}
	}
	raw, err := c.post(ctx, path("space", spaceID, "list"), req)
	if err != nil {
		return model.List{}, err
	}
	return model.DecodeList(raw)
}

func (c *Client) UpdateList(ctx context.Context, listID string, req ListRequest) (model.List, error) {
	raw, err := c.put(ctx, path("list", listID), req)
	if err != nil {
		return model.List{}, err
	}
	return model.DecodeList(raw)
}

func (c *Client) DeleteList(ctx context.Context, listID string) error {
	return c.delete(ctx, path("list", listID), nil)
}

// AddTaskToList adds a task to an additional list.
func (c *Client) AddTaskToList(ctx context.Context, listID, taskID string) error {
	_, err := c.post(ctx, path("list", listID, "task", taskID), nil)
	return err
}

func (c *Client) RemoveTaskFromList(ctx context.Context, listID, taskID string) error {
	return c.delete(ctx, path("list", listID, "task", taskID), nil)
}
