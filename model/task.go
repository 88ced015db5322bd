package model

// Reference: https://developer.clickup.com/reference/gettask
type Task struct {
	ID          *string `json:"id,omitzero"`
	CustomID    *string `json:"custom_id,omitzero"`
	Name        *string `json:"name,omitzero"`
	TextContent *string `json:"text_content,omitzero"`
	Description *string `json:"description,omitzero"`
	Status      *Status `json:"status,omitzero"`
	OrderIndex  *string `json:"orderindex,omitzero"`
	DateCreated *string `json:"date_created,omitzero"`
	DateUpdated *string `json:"date_updated,omitzero"`
	DateClosed  *string `json:"date_closed,omitzero"`
	DateDone    *string `json:"date_done,omitzero"`
	Archived    *bool   `json:"archived,omitzero"`
	Creator     *User   `json:"creator,omitzero"`
	Assignees   []User  `json:"assignees,omitzero"`
	Watchers    []User  `json:"watchers,omitzero"`

	// TaskChecklists and TaskTags are carried on the wire as "checklists"
	// and "tags".
	TaskChecklists []Checklist `json:"checklists,omitzero"`
	TaskTags       []Tag       `json:"tags,omitzero"`

	Parent          *string       `json:"parent,omitzero"`
	Priority        *Priority     `json:"priority,omitzero"`
	DueDate         *string       `json:"due_date,omitzero"`
	StartDate       *string       `json:"start_date,omitzero"`
	Points          *float64      `json:"points,omitzero"`
	TimeEstimate    *int64        `json:"time_estimate,omitzero"`
	TimeSpent       *int64        `json:"time_spent,omitzero"`
	CustomFields    []CustomField `json:"custom_fields,omitzero"`
	List            *Ref          `json:"list,omitzero"`
	Folder          *Ref          `json:"folder,omitzero"`
	Space           *Ref          `json:"space,omitzero"`
	TeamID          *string       `json:"team_id,omitzero"`
	PermissionLevel *string       `json:"permission_level,omitzero"`
	URL             string        `json:"url"`
}

type Priority struct {
	ID         *string `json:"id,omitzero"`
	Priority   *string `json:"priority,omitzero"`
	Color      *string `json:"color,omitzero"`
	OrderIndex *string `json:"orderindex,omitzero"`
}

type Tag struct {
	Name    *string `json:"name,omitzero"`
	TagFg   *string `json:"tag_fg,omitzero"`
	TagBg   *string `json:"tag_bg,omitzero"`
	Creator *int64  `json:"creator,omitzero"`
}

// Option is one choice of a drop-down or label custom field.
type Option struct {
	ID         *string `json:"id,omitzero"`
	Name       *string `json:"name,omitzero"`
	Color      *string `json:"color,omitzero"`
	OrderIndex *int    `json:"orderindex,omitzero"`
}

type TypeConfig struct {
	Default            *int     `json:"default,omitzero"`
	Placeholder        *string  `json:"placeholder,omitzero"`
	NewDropDown        *bool    `json:"new_drop_down,omitzero"`
	Options            []Option `json:"options,omitzero"`
	IncludeGuests      *bool    `json:"include_guests,omitzero"`
	IncludeTeamMembers *bool    `json:"include_team_members,omitzero"`
}

type CustomField struct {
	ID             *string     `json:"id,omitzero"`
	Name           *string     `json:"name,omitzero"`
	Type           *string     `json:"type,omitzero"`
	TypeConfig     *TypeConfig `json:"type_config,omitzero"`
	DateCreated    *string     `json:"date_created,omitzero"`
	HideFromGuests *bool       `json:"hide_from_guests,omitzero"`
	Value          any         `json:"value,omitzero"`
	Required       *bool       `json:"required,omitzero"`
}

// Attachment is returned by a task attachment upload. Every field is
// required.
type Attachment struct {
	ID             string `json:"id"`
	Version        int    `json:"version"`
	Date           string `json:"date"`
	Title          string `json:"title"`
	Extension      string `json:"extension"`
	ThumbnailSmall string `json:"thumbnail_small"`
	ThumbnailLarge string `json:"thumbnail_large"`
	URL            string `json:"url"`
}

func DecodeTask(raw map[string]any) (Task, error) {
	d := newDecoder("task", raw)
	t := Task{
		ID:              d.String("id"),
		CustomID:        d.String("custom_id"),
		Name:            d.String("name"),
		TextContent:     d.String("text_content"),
		Description:     d.String("description"),
		Status:          object(d, "status", DecodeStatus),
		OrderIndex:      d.String("orderindex"),
		DateCreated:     d.String("date_created"),
		DateUpdated:     d.String("date_updated"),
		DateClosed:      d.String("date_closed"),
		DateDone:        d.String("date_done"),
		Archived:        d.Bool("archived"),
		Creator:         object(d, "creator", DecodeUser),
		Assignees:       list(d, "assignees", DecodeUser),
		Watchers:        list(d, "watchers", DecodeUser),
		TaskChecklists:  list(d, "checklists", DecodeChecklist),
		TaskTags:        list(d, "tags", DecodeTag),
		Parent:          d.String("parent"),
		Priority:        object(d, "priority", DecodePriority),
		DueDate:         d.String("due_date"),
		StartDate:       d.String("start_date"),
		Points:          d.Float("points"),
		TimeEstimate:    d.Int64("time_estimate"),
		TimeSpent:       d.Int64("time_spent"),
		CustomFields:    list(d, "custom_fields", DecodeCustomField),
		List:            object(d, "list", DecodeRef),
		Folder:          object(d, "folder", DecodeRef),
		Space:           object(d, "space", DecodeRef),
		TeamID:          d.String("team_id"),
		PermissionLevel: d.String("permission_level"),
		URL:             d.StringOr("url", ""),
	}
	if err := d.Err(); err != nil {
		return Task{}, err
	}
	return t, nil
}

func DecodePriority(raw map[string]any) (Priority, error) {
	d := newDecoder("priority", raw)
	p := Priority{
		ID:         d.String("id"),
		Priority:   d.String("priority"),
		Color:      d.String("color"),
		OrderIndex: d.String("orderindex"),
	}
	if err := d.Err(); err != nil {
		return Priority{}, err
	}
	return p, nil
}

func DecodeTag(raw map[string]any) (Tag, error) {
	d := newDecoder("tag", raw)
	t := Tag{
		Name:    d.String("name"),
		TagFg:   d.String("tag_fg"),
		TagBg:   d.String("tag_bg"),
		Creator: d.Int64("creator"),
	}
	if err := d.Err(); err != nil {
		return Tag{}, err
	}
	return t, nil
}

func DecodeOption(raw map[string]any) (Option, error) {
	d := newDecoder("option", raw)
	o := Option{
		ID:         d.String("id"),
		Name:       d.String("name"),
		Color:      d.String("color"),
		OrderIndex: d.Int("orderindex"),
	}
	if err := d.Err(); err != nil {
		return Option{}, err
	}
	return o, nil
}

func DecodeTypeConfig(raw map[string]any) (TypeConfig, error) {
	d := newDecoder("type_config", raw)
	c := TypeConfig{
		Default:            d.Int("default"),
		Placeholder:        d.String("placeholder"),
		NewDropDown:        d.Bool("new_drop_down"),
		Options:            list(d, "options", DecodeOption),
		IncludeGuests:      d.Bool("include_guests"),
		IncludeTeamMembers: d.Bool("include_team_members"),
	}
	if err := d.Err(); err != nil {
		return TypeConfig{}, err
	}
	return c, nil
}

func DecodeCustomField(raw map[string]any) (CustomField, error) {
	d := newDecoder("custom_field", raw)
	f := CustomField{
		ID:             d.String("id"),
		Name:           d.String("name"),
		Type:           d.String("type"),
		TypeConfig:     object(d, "type_config", DecodeTypeConfig),
		DateCreated:    d.String("date_created"),
		HideFromGuests: d.Bool("hide_from_guests"),
		Value:          d.Any("value"),
		Required:       d.Bool("required"),
	}
	if err := d.Err(); err != nil {
		return CustomField{}, err
	}
	return f, nil
}

func DecodeAttachment(raw map[string]any) (Attachment, error) {
	d := newDecoder("attachment", raw)
	a := Attachment{
		ID:             d.RequiredString("id"),
		Version:        d.RequiredInt("version"),
		Date:           d.RequiredString("date"),
		Title:          d.RequiredString("title"),
		Extension:      d.RequiredString("extension"),
		ThumbnailSmall: d.RequiredString("thumbnail_small"),
		ThumbnailLarge: d.RequiredString("thumbnail_large"),
		URL:            d.RequiredString("url"),
	}
	if err := d.Err(); err != nil {
		return Attachment{}, err
	}
	return a, nil
}

func (t *Task) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, t, DecodeTask)
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, p, DecodePriority)
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, t, DecodeTag)
}

func (o *Option) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, o, DecodeOption)
}

func (c *TypeConfig) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, c, DecodeTypeConfig)
}

func (f *CustomField) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, f, DecodeCustomField)
}

func (a *Attachment) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, a, DecodeAttachment)
}
