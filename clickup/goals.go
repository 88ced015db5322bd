package clickup

import (
	"context"
	"net/url"
	"strconv"

	"github.com/roksva123/go-clickup/model"
)

type GoalRequest struct {
	Name           string  `json:"name"`
	DueDate        *int64  `json:"due_date,omitempty"`
	Description    string  `json:"description,omitempty"`
	MultipleOwners bool    `json:"multiple_owners"`
	Owners         []int64 `json:"owners,omitempty"`
	Color          string  `json:"color,omitempty"`
}

type UpdateGoalRequest struct {
	Name         string  `json:"name,omitempty"`
	DueDate      *int64  `json:"due_date,omitempty"`
	Description  string  `json:"description,omitempty"`
	AddOwners    []int64 `json:"add_owners,omitempty"`
	RemoveOwners []int64 `json:"rem_owners,omitempty"`
	Color        string  `json:"color,omitempty"`
}

func (c *Client) GetGoals(ctx context.Context, teamID string, includeCompleted bool) (*model.Goals, error) {
	q := url.Values{"include_completed": {strconv.FormatBool(includeCompleted)}}
	raw, err := c.get(ctx, path("team", teamID, "goal"), q)
	if err != nil {
		return nil, err
	}
	return model.NewGoals(raw)
}

func (c *Client) GetGoal(ctx context.Context, goalID string) (model.Goal, error) {
	raw, err := c.get(ctx, path("goal", goalID), nil)
	if err != nil {
		return model.Goal{}, err
	}
	return unwrap(raw, "goal", model.DecodeGoal)
}

func (c *Client) CreateGoal(ctx context.Context, teamID string, req GoalRequest) (model.Goal, error) {
	if req.Name == "" {
		return model.Goal{}, &Error{Message: "goal name is required"}
	}
	raw, err := c.post(ctx, path("team", teamID, "goal"), req)
	if err != nil {
		return model.Goal{}, err
	}
	return unwrap(raw, "goal", model.DecodeGoal)
}

func (c *Client) UpdateGoal(ctx context.Context, goalID string, req UpdateGoalRequest) (model.Goal, error) {
	raw, err := c.put(ctx, path("goal", goalID), req)
	if err != nil {
		return model.Goal{}, err
	}
	return unwrap(raw, "goal", model.DecodeGoal)
}

func (c *Client) DeleteGoal(ctx context.Context, goalID string) error {
	return c.delete(ctx, path("goal", goalID), nil)
}
