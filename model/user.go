package model

// Reference: https://developer.clickup.com/reference/getauthorizedteams

type User struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Color          string  `json:"color"`
	ProfilePicture *string `json:"profilePicture,omitzero"`
	Initials       *string `json:"initials,omitzero"`
	Email          *string `json:"email,omitzero"`
	Role           *int    `json:"role,omitzero"`
	CustomRole     any     `json:"custom_role,omitzero"`
	LastActive     *string `json:"last_active,omitzero"`
	DateJoined     *string `json:"date_joined,omitzero"`
	DateInvited    *string `json:"date_invited,omitzero"`
}

// Member is a workspace membership entry.
type Member struct {
	User      User  `json:"user"`
	InvitedBy *User `json:"invited_by,omitzero"`
}

// Team is what the API still calls a Workspace.
type Team struct {
	ID      *string  `json:"id,omitzero"`
	Name    *string  `json:"name,omitzero"`
	Color   *string  `json:"color,omitzero"`
	Avatar  *string  `json:"avatar,omitzero"`
	Members []Member `json:"members,omitzero"`
}

func DecodeUser(raw map[string]any) (User, error) {
	d := newDecoder("user", raw)
	u := User{
		ID:             d.RequiredInt64("id"),
		Username:       d.RequiredString("username"),
		Color:          d.RequiredString("color"),
		ProfilePicture: d.String("profilePicture"),
		Initials:       d.String("initials"),
		Email:          d.String("email"),
		Role:           d.Int("role"),
		CustomRole:     d.Any("custom_role"),
		LastActive:     d.String("last_active"),
		DateJoined:     d.String("date_joined"),
		DateInvited:    d.String("date_invited"),
	}
	if err := d.Err(); err != nil {
		return User{}, err
	}
	return u, nil
}

func DecodeMember(raw map[string]any) (Member, error) {
	d := newDecoder("member", raw)
	m := Member{
		User:      requiredObject(d, "user", DecodeUser),
		InvitedBy: object(d, "invited_by", DecodeUser),
	}
	if err := d.Err(); err != nil {
		return Member{}, err
	}
	return m, nil
}

func DecodeTeam(raw map[string]any) (Team, error) {
	d := newDecoder("team", raw)
	t := Team{
		ID:      d.String("id"),
		Name:    d.String("name"),
		Color:   d.String("color"),
		Avatar:  d.String("avatar"),
		Members: list(d, "members", DecodeMember),
	}
	if err := d.Err(); err != nil {
		return Team{}, err
	}
	return t, nil
}

func (u *User) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, u, DecodeUser)
}

func (m *Member) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, m, DecodeMember)
}

func (t *Team) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, t, DecodeTeam)
}
