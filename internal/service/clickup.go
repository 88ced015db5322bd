package service

import (
	"context"
	"errors"
	"log"

	"github.com/roksva123/go-clickup/clickup"
	"github.com/roksva123/go-clickup/model"
)

// ClickUp is the part of *clickup.Client the services use.
type ClickUp interface {
	GetSpaces(ctx context.Context, teamID string, includeArchived bool) (*model.Spaces, error)
	GetFolders(ctx context.Context, spaceID string, includeArchived bool) (*model.Folders, error)
	GetLists(ctx context.Context, folderID string, includeArchived bool) (*model.Lists, error)
	GetFolderlessLists(ctx context.Context, spaceID string, includeArchived bool) (*model.Lists, error)
	GetTimeEntriesInRange(ctx context.Context, teamID string, q clickup.TimeEntryQuery) (*model.TimeEntries, error)
}

type FolderNode struct {
	Folder model.Folder `json:"folder"`
	Lists  []model.List `json:"lists"`
}

type SpaceNode struct {
	Space           model.Space  `json:"space"`
	Folders         []FolderNode `json:"folders"`
	FolderlessLists []model.List `json:"folderless_lists"`
}

type HierarchyService struct {
	Click ClickUp
}

func NewHierarchyService(click ClickUp) *HierarchyService {
	return &HierarchyService{Click: click}
}

// Walk loads the active spaces of a workspace with their folders and lists.
// Only a failure to list spaces is returned; folder and list failures are
// logged and leave that branch empty.
func (s *HierarchyService) Walk(ctx context.Context, teamID string) ([]SpaceNode, error) {
	if teamID == "" {
		return nil, errors.New("team id not configured")
	}

	spaces, err := s.Click.GetSpaces(ctx, teamID, false)
	if err != nil {
		return nil, err
	}
	log.Printf("Found %d active spaces.", spaces.Len())

	out := make([]SpaceNode, 0, spaces.Len())
	for space := range spaces.Values() {
		node := SpaceNode{Space: space, Folders: []FolderNode{}, FolderlessLists: []model.List{}}
		log.Printf("--- Processing Space: %s ---", space.ID)

		folders, err := s.Click.GetFolders(ctx, space.ID, false)
		if err != nil {
			log.Printf("WARNING: Could not fetch folders for space %s: %v", space.ID, err)
		} else {
			for folder := range folders.Values() {
				fn := FolderNode{Folder: folder, Lists: []model.List{}}
				lists, err := s.Click.GetLists(ctx, folder.ID, false)
				if err != nil {
					log.Printf("WARNING: Could not fetch lists for folder %s: %v", folder.ID, err)
				} else {
					fn.Lists = lists.Items()
				}
				node.Folders = append(node.Folders, fn)
			}
		}

		lists, err := s.Click.GetFolderlessLists(ctx, space.ID, false)
		if err != nil {
			log.Printf("WARNING: Could not fetch folderless lists for space %s: %v", space.ID, err)
		} else {
			node.FolderlessLists = lists.Items()
		}

		out = append(out, node)
	}
	return out, nil
}
