package clickup

import (
	"context"

	"github.com/roksva123/go-clickup/model"
)

// TagRequest names a space tag and its foreground and background colors.
type TagRequest struct {
	Name  string `json:"name"`
	TagFg string `json:"tag_fg,omitempty"`
	TagBg string `json:"tag_bg,omitempty"`
}

func (c *Client) GetSpaceTags(ctx context.Context, spaceID string) (*model.Tags, error) {
	raw, err := c.get(ctx, path("space", spaceID, "tag"), nil)
	if err != nil {
		return nil, err
	}
	return model.NewTags(raw)
}

func (c *Client) CreateSpaceTag(ctx context.Context, spaceID string, tag TagRequest) error {
	body := struct {
		Tag TagRequest `json:"tag"`
	}{tag}
	_, err := c.post(ctx, path("space", spaceID, "tag"), body)
	return err
}

func (c *Client) DeleteSpaceTag(ctx context.Context, spaceID, name string) error {
	return c.delete(ctx, path("space", spaceID, "tag", name), nil)
}

func (c *Client) AddTagToTask(ctx context.Context, taskID, name string) error {
	_, err := c.post(ctx, path("task", taskID, "tag", name), nil)
	return err
}

func (c *Client) RemoveTagFromTask(ctx context.Context, taskID, name string) error {
	return c.delete(ctx, path("task", taskID, "tag", name), nil)
}
