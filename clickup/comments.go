package clickup

import (
	"context"

	"github.com/roksva123/go-clickup/model"
)

type CommentRequest struct {
	CommentText string `json:"comment_text"`
	Assignee    int64  `json:"assignee,omitempty"`
	NotifyAll   bool   `json:"notify_all"`
}

type UpdateCommentRequest struct {
	CommentText string `json:"comment_text,omitempty"`
	Assignee    int64  `json:"assignee,omitempty"`
	Resolved    *bool  `json:"resolved,omitempty"`
}

func (c *Client) GetTaskComments(ctx context.Context, taskID string) (*model.Comments, error) {
	raw, err := c.get(ctx, path("task", taskID, "comment"), nil)
	if err != nil {
		return nil, err
	}
	return model.NewComments(raw)
}

func (c *Client) GetListComments(ctx context.Context, listID string) (*model.Comments, error) {
	raw, err := c.get(ctx, path("list", listID, "comment"), nil)
	if err != nil {
		return nil, err
	}
	return model.NewComments(raw)
}

// CreateTaskComment returns the new comment's id, hist_id and date.
func (c *Client) CreateTaskComment(ctx context.Context, taskID string, req CommentRequest) (model.Comment, error) {
	raw, err := c.post(ctx, path("task", taskID, "comment"), req)
	if err != nil {
		return model.Comment{}, err
	}
	return model.DecodeComment(raw)
}

func (c *Client) CreateListComment(ctx context.Context, listID string, req CommentRequest) (model.Comment, error) {
	raw, err := c.post(ctx, path("list", listID, "comment"), req)
	if err != nil {
		return model.Comment{}, err
	}
	return model.DecodeComment(raw)
}

func (c *Client) UpdateComment(ctx context.Context, commentID string, req UpdateCommentRequest) error {
	_, err := c.put(ctx, path("comment", commentID), req)
	return err
}

func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return c.delete(ctx, path("comment", commentID), nil)
}
