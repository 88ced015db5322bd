package clickup

import (
	"context"

	"github.com/roksva123/go-clickup/model"
)

type ChecklistItemRequest struct {
	Name     string  `json:"name,omitempty"`
	Assignee *int64  `json:"assignee,omitempty"`
	Resolved *bool   `json:"resolved,omitempty"`
	Parent   *string `json:"parent,omitempty"`
}

type updateChecklistRequest struct {
	Name     string `json:"name,omitempty"`
	Position *int   `json:"position,omitempty"`
}

func (c *Client) CreateChecklist(ctx context.Context, taskID, name string) (model.Checklist, error) {
	raw, err := c.post(ctx, path("task", taskID, "checklist"), updateChecklistRequest{Name: name})
	if err != nil {
		return model.Checklist{}, err
	}
	return unwrap(raw, "checklist", model.DecodeChecklist)
}

// UpdateChecklist renames or moves a checklist. A nil position keeps it in place.
func (c *Client) UpdateChecklist(ctx context.Context, checklistID, name string, position *int) error {
	_, err := c.put(ctx, path("checklist", checklistID), updateChecklistRequest{Name: name, Position: position})
	return err
}

func (c *Client) DeleteChecklist(ctx context.Context, checklistID string) error {
	return c.delete(ctx, path("checklist", checklistID), nil)
}

// CreateChecklistItem returns the checklist with the new item included.
func (c *Client) CreateChecklistItem(ctx context.Context, checklistID string, req ChecklistItemRequest) (model.Checklist, error) {
	raw, err := c.post(ctx, path("checklist", checklistID, "checklist_item"), req)
	if err != nil {
		return model.Checklist{}, err
	}
	return unwrap(raw, "checklist", model.DecodeChecklist)
}

func (c *Client) UpdateChecklistItem(ctx context.Context, checklistID, itemID string, req ChecklistItemRequest) (model.Checklist, error) {
	raw, err := c.put(ctx, path("checklist", checklistID, "checklist_item", itemID), req)
	if err != nil {
		return model.Checklist{}, err
	}
	return unwrap(raw, "checklist", model.DecodeChecklist)
}

func (c *Client) DeleteChecklistItem(ctx context.Context, checklistID, itemID string) error {
	return c.delete(ctx, path("checklist", checklistID, "checklist_item", itemID), nil)
}
