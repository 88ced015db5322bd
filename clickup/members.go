package clickup

import (
	"context"

	"github.com/roksva123/go-clickup/model"
)

// GetTaskMembers returns the users who can see a task.
func (c *Client) GetTaskMembers(ctx context.Context, taskID string) (*model.Members, error) {
	raw, err := c.get(ctx, path("task", taskID, "member"), nil)
	if err != nil {
		return nil, err
	}
	return model.NewMembers(raw)
}

func (c *Client) GetListMembers(ctx context.Context, listID string) (*model.Members, error) {
	raw, err := c.get(ctx, path("list", listID, "member"), nil)
	if err != nil {
		return nil, err
	}
	return model.NewMembers(raw)
}
