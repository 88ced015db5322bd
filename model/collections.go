package model

// Typed collections for the list endpoints. Each reads the list under the
// key ClickUp uses for that resource.

type (
	Tasks       = Collection[Task]
	Lists       = Collection[List]
	Folders     = Collection[Folder]
	Spaces      = Collection[Space]
	Teams       = Collection[Team]
	Members     = Collection[User]
	Goals       = Collection[Goal]
	Comments    = Collection[Comment]
	Checklists  = Collection[Checklist]
	Tags        = Collection[Tag]
	TimeEntries = Collection[TimeEntry]
	Fields      = Collection[CustomField]
)

func NewTasks(payload map[string]any) (*Tasks, error) {
	return CollectionFrom(payload, "tasks", DecodeTask)
}

func NewLists(payload map[string]any) (*Lists, error) {
	return CollectionFrom(payload, "lists", DecodeList)
}

func NewFolders(payload map[string]any) (*Folders, error) {
	return CollectionFrom(payload, "folders", DecodeFolder)
}

func NewSpaces(payload map[string]any) (*Spaces, error) {
	return CollectionFrom(payload, "spaces", DecodeSpace)
}

func NewTeams(payload map[string]any) (*Teams, error) {
	return CollectionFrom(payload, "teams", DecodeTeam)
}

// NewMembers reads task and list member listings, which are plain users.
func NewMembers(payload map[string]any) (*Members, error) {
	return CollectionFrom(payload, "members", DecodeUser)
}

func NewGoals(payload map[string]any) (*Goals, error) {
	return CollectionFrom(payload, "goals", DecodeGoal)
}

func NewComments(payload map[string]any) (*Comments, error) {
	return CollectionFrom(payload, "comments", DecodeComment)
}

func NewChecklists(payload map[string]any) (*Checklists, error) {
	return CollectionFrom(payload, "checklists", DecodeChecklist)
}

func NewTags(payload map[string]any) (*Tags, error) {
	return CollectionFrom(payload, "tags", DecodeTag)
}

// NewTimeEntries reads {"data": [...]}; absent or null data is empty.
func NewTimeEntries(payload map[string]any) (*TimeEntries, error) {
	return collectionOrEmpty(payload, "data", DecodeTimeEntry)
}

func NewFields(payload map[string]any) (*Fields, error) {
	return CollectionFrom(payload, "fields", DecodeCustomField)
}
