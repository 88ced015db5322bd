package model

type Goal struct {
	ID               *string `json:"id,omitzero"`
	Name             *string `json:"name,omitzero"`
	TeamID           *string `json:"team_id,omitzero"`
	DateCreated      *string `json:"date_created,omitzero"`
	StartDate        *string `json:"start_date,omitzero"`
	DueDate          *string `json:"due_date,omitzero"`
	Description      *string `json:"description,omitzero"`
	Private          *bool   `json:"private,omitzero"`
	Archived         *bool   `json:"archived,omitzero"`
	Creator          *int64  `json:"creator,omitzero"`
	Color            *string `json:"color,omitzero"`
	PrettyID         *int    `json:"pretty_id,omitzero"`
	MultipleOwners   *bool   `json:"multiple_owners,omitzero"`
	FolderID         *string `json:"folder_id,omitzero"`
	Members          []User  `json:"members,omitzero"`
	Owners           []User  `json:"owners,omitzero"`
	KeyResults       []any   `json:"key_results,omitzero"`
	PercentCompleted *int    `json:"percent_completed,omitzero"`
	History          []any   `json:"history,omitzero"`
	PrettyURL        *string `json:"pretty_url,omitzero"`
}

func DecodeGoal(raw map[string]any) (Goal, error) {
	d := newDecoder("goal", raw)
	g := Goal{
		ID:               d.String("id"),
		Name:             d.String("name"),
		TeamID:           d.String("team_id"),
		DateCreated:      d.String("date_created"),
		StartDate:        d.String("start_date"),
		DueDate:          d.String("due_date"),
		Description:      d.String("description"),
		Private:          d.Bool("private"),
		Archived:         d.Bool("archived"),
		Creator:          d.Int64("creator"),
		Color:            d.String("color"),
		PrettyID:         d.Int("pretty_id"),
		MultipleOwners:   d.Bool("multiple_owners"),
		FolderID:         d.String("folder_id"),
		Members:          list(d, "members", DecodeUser),
		Owners:           list(d, "owners", DecodeUser),
		KeyResults:       d.AnyList("key_results"),
		PercentCompleted: d.Int("percent_completed"),
		History:          d.AnyList("history"),
		PrettyURL:        d.String("pretty_url"),
	}
	if err := d.Err(); err != nil {
		return Goal{}, err
	}
	return g, nil
}

func (g *Goal) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, g, DecodeGoal)
}
