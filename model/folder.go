package model

// Reference: https://developer.clickup.com/reference/getfolder
type Folder struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	OrderIndex       *int     `json:"orderindex,omitzero"`
	OverrideStatuses *bool    `json:"override_statuses,omitzero"`
	Hidden           bool     `json:"hidden"`
	Space            *Ref     `json:"space,omitzero"`
	TaskCount        *int     `json:"task_count,omitzero"`
	Archived         *bool    `json:"archived,omitzero"`
	Statuses         []Status `json:"statuses,omitzero"`
	Lists            []List   `json:"lists,omitzero"`
}

// Reference: https://developer.clickup.com/reference/getlist
type List struct {
	ID               *string   `json:"id,omitzero"`
	Name             *string   `json:"name,omitzero"`
	OrderIndex       *int      `json:"orderindex,omitzero"`
	Content          *string   `json:"content,omitzero"`
	Status           *Status   `json:"status,omitzero"`
	Priority         *Priority `json:"priority,omitzero"`
	Assignee         *User     `json:"assignee,omitzero"`
	TaskCount        *int      `json:"task_count,omitzero"`
	DueDate          *string   `json:"due_date,omitzero"`
	StartDate        *string   `json:"start_date,omitzero"`
	Folder           *Ref      `json:"folder,omitzero"`
	Space            *Ref      `json:"space,omitzero"`
	Archived         *bool     `json:"archived,omitzero"`
	OverrideStatuses *bool     `json:"override_statuses,omitzero"`
	Statuses         []Status  `json:"statuses,omitzero"`
	PermissionLevel  *string   `json:"permission_level,omitzero"`
}

func DecodeFolder(raw map[string]any) (Folder, error) {
	d := newDecoder("folder", raw)
	f := Folder{
		ID:               d.RequiredString("id"),
		Name:             d.RequiredString("name"),
		OrderIndex:       d.Int("orderindex"),
		OverrideStatuses: d.Bool("override_statuses"),
		Hidden:           d.RequiredBool("hidden"),
		Space:            object(d, "space", DecodeRef),
		TaskCount:        d.Int("task_count"),
		Archived:         d.Bool("archived"),
		Statuses:         list(d, "statuses", DecodeStatus),
		Lists:            list(d, "lists", DecodeList),
	}
	if err := d.Err(); err != nil {
		return Folder{}, err
	}
	return f, nil
}

func DecodeList(raw map[string]any) (List, error) {
	d := newDecoder("list", raw)
	l := List{
		ID:               d.String("id"),
		Name:             d.String("name"),
		OrderIndex:       d.Int("orderindex"),
		Content:          d.String("content"),
		Status:           object(d, "status", DecodeStatus),
		Priority:         object(d, "priority", DecodePriority),
		Assignee:         object(d, "assignee", DecodeUser),
		TaskCount:        d.Int("task_count"),
		DueDate:          d.String("due_date"),
		StartDate:        d.String("start_date"),
		Folder:           object(d, "folder", DecodeRef),
		Space:            object(d, "space", DecodeRef),
		Archived:         d.Bool("archived"),
		OverrideStatuses: d.Bool("override_statuses"),
		Statuses:         list(d, "statuses", DecodeStatus),
		PermissionLevel:  d.String("permission_level"),
	}
	if err := d.Err(); err != nil {
		return List{}, err
	}
	return l, nil
}

func (f *Folder) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, f, DecodeFolder)
}

func (l *List) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, l, DecodeList)
}
