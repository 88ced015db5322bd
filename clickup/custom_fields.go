package clickup

import (
	"context"

	"github.com/roksva123/go-clickup/model"
)

// GetAccessibleCustomFields returns the custom fields available on a list.
func (c *Client) GetAccessibleCustomFields(ctx context.Context, listID string) (*model.Fields, error) {
	raw, err := c.get(ctx, path("list", listID, "field"), nil)
	if err != nil {
		return nil, err
	}
	return model.NewFields(raw)
}

// SetCustomFieldValue sets a task's value for a field. The shape of value
// depends on the field type.
func (c *Client) SetCustomFieldValue(ctx context.Context, taskID, fieldID string, value any) error {
	body := map[string]any{"value": value}
	_, err := c.post(ctx, path("task", taskID, "field", fieldID), body)
	return err
}
