package model

// CommentText is one rich-text segment of a comment body.
type CommentText struct {
	Text *string `json:"text,omitzero"`
	Type *string `json:"type,omitzero"`
}

type Comment struct {
	ID          *string       `json:"id,omitzero"`
	Comment     []CommentText `json:"comment,omitzero"`
	CommentText *string       `json:"comment_text,omitzero"`
	User        *User         `json:"user,omitzero"`
	Resolved    *bool         `json:"resolved,omitzero"`
	Assignee    *User         `json:"assignee,omitzero"`
	AssignedBy  *User         `json:"assigned_by,omitzero"`
	Reactions   []any         `json:"reactions,omitzero"`
	Date        *string       `json:"date,omitzero"`
	HistID      *string       `json:"hist_id,omitzero"`
}

func DecodeCommentText(raw map[string]any) (CommentText, error) {
	d := newDecoder("comment_text", raw)
	t := CommentText{
		Text: d.String("text"),
		Type: d.String("type"),
	}
	if err := d.Err(); err != nil {
		return CommentText{}, err
	}
	return t, nil
}

func DecodeComment(raw map[string]any) (Comment, error) {
	d := newDecoder("comment", raw)
	c := Comment{
		ID:          d.String("id"),
		Comment:     list(d, "comment", DecodeCommentText),
		CommentText: d.String("comment_text"),
		User:        object(d, "user", DecodeUser),
		Resolved:    d.Bool("resolved"),
		Assignee:    object(d, "assignee", DecodeUser),
		AssignedBy:  object(d, "assigned_by", DecodeUser),
		Reactions:   d.AnyList("reactions"),
		Date:        d.String("date"),
		HistID:      d.String("hist_id"),
	}
	if err := d.Err(); err != nil {
		return Comment{}, err
	}
	return c, nil
}

func (t *CommentText) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, t, DecodeCommentText)
}

func (c *Comment) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, c, DecodeComment)
}
