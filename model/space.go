package model

// Reference: https://developer.clickup.com/reference/getspaces

// EnabledFlag is the {"enabled": bool} shape most space features use.
type EnabledFlag struct {
	Enabled bool `json:"enabled"`
}

type DueDatesFeature struct {
	Enabled            bool `json:"enabled"`
	StartDate          bool `json:"start_date"`
	RemapDueDates      bool `json:"remap_due_dates"`
	RemapClosedDueDate bool `json:"remap_closed_due_date"`
}

type TimeTrackingFeature struct {
	Enabled bool `json:"enabled"`
	Harvest bool `json:"harvest"`
	Rollup  bool `json:"rollup"`
}

// Features holds the per-space feature toggles. A toggle missing from the
// payload decodes as disabled.
type Features struct {
	DueDates          DueDatesFeature     `json:"due_dates"`
	TimeTracking      TimeTrackingFeature `json:"time_tracking"`
	Tags              EnabledFlag         `json:"tags"`
	TimeEstimates     EnabledFlag         `json:"time_estimates"`
	Checklists        EnabledFlag         `json:"checklists"`
	CustomFields      EnabledFlag         `json:"custom_fields"`
	RemapDependencies EnabledFlag         `json:"remap_dependencies"`
	DependencyWarning EnabledFlag         `json:"dependency_warning"`
	Portfolios        EnabledFlag         `json:"portfolios"`
	Milestones        EnabledFlag         `json:"milestones"`
	Points            EnabledFlag         `json:"points"`
	Emails            EnabledFlag         `json:"emails"`
}

// Status is a workflow status as attached to tasks, lists and spaces.
type Status struct {
	ID         *string `json:"id,omitzero"`
	Status     *string `json:"status,omitzero"`
	Color      *string `json:"color,omitzero"`
	OrderIndex *int    `json:"orderindex,omitzero"`
	Type       *string `json:"type,omitzero"`
}

// Ref is the short location pointer ClickUp embeds in tasks, lists and
// folders to name their list, folder or space.
type Ref struct {
	ID     *string `json:"id,omitzero"`
	Name   *string `json:"name,omitzero"`
	Hidden *bool   `json:"hidden,omitzero"`
	Access *bool   `json:"access,omitzero"`
}

type Space struct {
	ID                string   `json:"id"`
	Name              *string  `json:"name,omitzero"`
	Private           *bool    `json:"private,omitzero"`
	Statuses          []Status `json:"statuses,omitzero"`
	MultipleAssignees *bool    `json:"multiple_assignees,omitzero"`
	Features          Features `json:"features"`
	Color             *string  `json:"color,omitzero"`
	Access            *bool    `json:"access,omitzero"`
	AdminCanManage    *bool    `json:"admin_can_manage,omitzero"`
	Archived          *bool    `json:"archived,omitzero"`
	Members           []Member `json:"members,omitzero"`
}

func DecodeEnabledFlag(raw map[string]any) (EnabledFlag, error) {
	d := newDecoder("enabled_flag", raw)
	f := EnabledFlag{Enabled: d.BoolOr("enabled", false)}
	return f, d.Err()
}

func DecodeDueDatesFeature(raw map[string]any) (DueDatesFeature, error) {
	d := newDecoder("due_dates", raw)
	f := DueDatesFeature{
		Enabled:            d.BoolOr("enabled", false),
		StartDate:          d.BoolOr("start_date", false),
		RemapDueDates:      d.BoolOr("remap_due_dates", false),
		RemapClosedDueDate: d.BoolOr("remap_closed_due_date", false),
	}
	return f, d.Err()
}

func DecodeTimeTrackingFeature(raw map[string]any) (TimeTrackingFeature, error) {
	d := newDecoder("time_tracking", raw)
	f := TimeTrackingFeature{
		Enabled: d.BoolOr("enabled", false),
		Harvest: d.BoolOr("harvest", false),
		Rollup:  d.BoolOr("rollup", false),
	}
	return f, d.Err()
}

func DecodeFeatures(raw map[string]any) (Features, error) {
	d := newDecoder("features", raw)
	f := Features{
		DueDates:          objectOrDefault(d, "due_dates", DecodeDueDatesFeature),
		TimeTracking:      objectOrDefault(d, "time_tracking", DecodeTimeTrackingFeature),
		Tags:              objectOrDefault(d, "tags", DecodeEnabledFlag),
		TimeEstimates:     objectOrDefault(d, "time_estimates", DecodeEnabledFlag),
		Checklists:        objectOrDefault(d, "checklists", DecodeEnabledFlag),
		CustomFields:      objectOrDefault(d, "custom_fields", DecodeEnabledFlag),
		RemapDependencies: objectOrDefault(d, "remap_dependencies", DecodeEnabledFlag),
		DependencyWarning: objectOrDefault(d, "dependency_warning", DecodeEnabledFlag),
		Portfolios:        objectOrDefault(d, "portfolios", DecodeEnabledFlag),
		Milestones:        objectOrDefault(d, "milestones", DecodeEnabledFlag),
		Points:            objectOrDefault(d, "points", DecodeEnabledFlag),
		Emails:            objectOrDefault(d, "emails", DecodeEnabledFlag),
	}
	if err := d.Err(); err != nil {
		return Features{}, err
	}
	return f, nil
}

func DecodeStatus(raw map[string]any) (Status, error) {
	d := newDecoder("status", raw)
	s := Status{
		ID:         d.String("id"),
		Status:     d.String("status"),
		Color:      d.String("color"),
		OrderIndex: d.Int("orderindex"),
		Type:       d.String("type"),
	}
	if err := d.Err(); err != nil {
		return Status{}, err
	}
	return s, nil
}

func DecodeRef(raw map[string]any) (Ref, error) {
	d := newDecoder("ref", raw)
	r := Ref{
		ID:     d.String("id"),
		Name:   d.String("name"),
		Hidden: d.Bool("hidden"),
		Access: d.Bool("access"),
	}
	if err := d.Err(); err != nil {
		return Ref{}, err
	}
	return r, nil
}

func DecodeSpace(raw map[string]any) (Space, error) {
	d := newDecoder("space", raw)
	s := Space{
		ID:                d.RequiredString("id"),
		Name:              d.String("name"),
		Private:           d.Bool("private"),
		Statuses:          list(d, "statuses", DecodeStatus),
		MultipleAssignees: d.Bool("multiple_assignees"),
		Features:          objectOrDefault(d, "features", DecodeFeatures),
		Color:             d.String("color"),
		Access:            d.Bool("access"),
		AdminCanManage:    d.Bool("admin_can_manage"),
		Archived:          d.Bool("archived"),
		Members:           list(d, "members", DecodeMember),
	}
	if err := d.Err(); err != nil {
		return Space{}, err
	}
	return s, nil
}

func (f *Features) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, f, DecodeFeatures)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, s, DecodeStatus)
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, r, DecodeRef)
}

func (s *Space) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, s, DecodeSpace)
}
