package clickup

import (
	"context"

	"github.com/roksva123/go-clickup/model"
)

// SpaceRequest is the body for creating or updating a space. Features is
// sent whole, so every toggle should be set the way it is wanted.
type SpaceRequest struct {
	Name              string         `json:"name"`
	MultipleAssignees bool           `json:"multiple_assignees"`
	Features          model.Features `json:"features"`
}

// GetTeams returns the workspaces the token can access.
func (c *Client) GetTeams(ctx context.Context) (*model.Teams, error) {
	raw, err := c.get(ctx, "team", nil)
	if err != nil {
		return nil, err
	}
	return model.NewTeams(raw)
}

func (c *Client) GetSpaces(ctx context.Context, teamID string, includeArchived bool) (*model.Spaces, error) {
	raw, err := c.get(ctx, path("team", teamID, "space"), archived(includeArchived))
	if err != nil {
		return nil, err
	}
	return model.NewSpaces(raw)
}

func (c *Client) GetSpace(ctx context.Context, spaceID string) (model.Space, error) {
	raw, err := c.get(ctx, path("space", spaceID), nil)
	if err != nil {
		return model.Space{}, err
	}
	return model.DecodeSpace(raw)
}

func (c *Client) CreateSpace(ctx context.Context, teamID string, req SpaceRequest) (model.Space, error) {
	if req.Name == "" {
		return model.Space{}, &Error{Message: "space name is required"}
	}
	raw, err := c.post(ctx, path("team", teamID, "space"), req)
	if err != nil {
		return model.Space{}, err
	}
	return model.DecodeSpace(raw)
}

func (c *Client) UpdateSpace(ctx context.Context, spaceID string, req SpaceRequest) (model.Space, error) {
	raw, err := c.put(ctx, path("space", spaceID), req)
	if err != nil {
		return model.Space{}, err
	}
	return model.DecodeSpace(raw)
}

func (c *Client) DeleteSpace(ctx context.Context, spaceID string) error {
	return c.delete(ctx, path("space", spaceID), nil)
}
