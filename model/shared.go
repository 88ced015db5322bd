package model

// Shared lists the tasks, lists and folders shared with the authorized user.
type Shared struct {
	Tasks   []Task   `json:"tasks,omitzero"`
	Lists   []List   `json:"lists,omitzero"`
	Folders []Folder `json:"folders,omitzero"`
}

type SharedHierarchy struct {
	Shared Shared `json:"shared"`
}

func DecodeShared(raw map[string]any) (Shared, error) {
	d := newDecoder("shared", raw)
	s := Shared{
		Tasks:   list(d, "tasks", DecodeTask),
		Lists:   list(d, "lists", DecodeList),
		Folders: list(d, "folders", DecodeFolder),
	}
	if err := d.Err(); err != nil {
		return Shared{}, err
	}
	return s, nil
}

func DecodeSharedHierarchy(raw map[string]any) (SharedHierarchy, error) {
	d := newDecoder("shared_hierarchy", raw)
	h := SharedHierarchy{
		Shared: requiredObject(d, "shared", DecodeShared),
	}
	if err := d.Err(); err != nil {
		return SharedHierarchy{}, err
	}
	return h, nil
}

func (s *Shared) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, s, DecodeShared)
}

func (h *SharedHierarchy) UnmarshalJSON(data []byte) error {
	return unmarshalWith(data, h, DecodeSharedHierarchy)
}
