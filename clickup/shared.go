package clickup

import (
	"context"

	"github.com/roksva123/go-clickup/model"
)

// GetSharedHierarchy returns the tasks, lists and folders shared with the
// authenticated user in a workspace.
func (c *Client) GetSharedHierarchy(ctx context.Context, teamID string) (model.SharedHierarchy, error) {
	raw, err := c.get(ctx, path("team", teamID, "shared"), nil)
	if err != nil {
		return model.SharedHierarchy{}, err
	}
	return model.DecodeSharedHierarchy(raw)
}
