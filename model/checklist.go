package model

type ChecklistItem struct {
	ID          *string `json:"id,omitzero"`
	Name        *string `json:"name,omitzero"`
	OrderIndex  *int    `json:"orderindex,omitzero"`
	Assignee    *User   `json:"assignee,omitzero"`
	Resolved    *bool   `json:"resolved,omitzero"`
	Parent      *string `json:"parent,omitzero"`
	DateCreated *string `json:"date_created,omitzero"`
	Children    []any   `json:"children,omitzero"`
}

type Checklist struct {
	ID         *string         `json:"id,omitzero"`
	TaskID     *string         `json:"task_id,omitzero"`
	Name       *string         `json:"name,omitzero"`
	OrderIndex *int            `json:"orderindex,omitzero"`
	Resolved   *int            `json:"resolved,omitzero"`
	Unresolved *int            `json:"unresolved,omitzero"`
	Items      []ChecklistItem `json:"items,omitzero"`
}

func DecodeChecklistItem(raw map[string]any) (ChecklistItem, error) {
	d := newDecoder("checklist_item", raw)
	i := ChecklistItem{
		ID:          d.String("id"),
		Name:        d.String("name"),
		OrderIndex:  d.Int("orderindex"),
		Assignee:    object(d, "assignee", DecodeUser),
		Resolved:    d.Bool("resolved"),
		Parent:      d.String("parent"),
		DateCreated: d.String("date_created"),
		Children:    d.AnyList("children"),
	}
	if err := d.Err(); err != nil {
		return ChecklistItem{}, err
	}
	return i, nil
}

func DecodeChecklist(raw map[string]any) (Checklist, error) {
	d := newDecoder("checklist", raw)
	c := Checklist{
		ID:         d.String("id"),
		TaskID:     d.String("task_id"),
		Name:       d.String("name"),
		OrderIndex: d.Int("orderindex"),
		Resolved:   d.Int("resolved"),
		Unresolved: d.Int("unresolved"),
		Items:      list(d, "items", DecodeChecklistItem),
	}
	if err := d.Err(); err != nil {
		return Checklist{}, err
	}
	return c, nil
}

func (i *ChecklistItem) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, i, DecodeChecklistItem)
}

func (c *Checklist) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, c, DecodeChecklist)
}
