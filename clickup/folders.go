package clickup

import (
	"context"

	"github.com/roksva123/go-clickup/model"
)

type folderRequest struct {
	Name string `json:"name"`
}

func (c *Client) GetFolder(ctx context.Context, folderID string) (model.Folder, error) {
	raw, err := c.get(ctx, path("folder", folderID), nil)
	if err != nil {
		return model.Folder{}, err
	}
	return model.DecodeFolder(raw)
}

func (c *Client) GetFolders(ctx context.Context, spaceID string, includeArchived bool) (*model.Folders, error) {
	raw, err := c.get(ctx, path("space", spaceID, "folder"), archived(includeArchived))
	if err != nil {
		return nil, err
	}
	return model.NewFolders(raw)
}

func (c *Client) CreateFolder(ctx context.Context, spaceID, name string) (model.Folder, error) {
	raw, err := c.post(ctx, path("space", spaceID, "folder"), folderRequest{Name: name})
	if err != nil {
		return model.Folder{}, err
	}
	return model.DecodeFolder(raw)
}

func (c *Client) UpdateFolder(ctx context.Context, folderID, name string) (model.Folder, error) {
	raw, err := c.put(ctx, path("folder", folderID), folderRequest{Name: name})
	if err != nil {
		return model.Folder{}, err
	}
	return model.DecodeFolder(raw)
}

func (c *Client) DeleteFolder(ctx context.Context, folderID string) error {
	return c.delete(ctx, path("folder", folderID), nil)
}
