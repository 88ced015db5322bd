package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roksva123/go-clickup/clickup"
	"github.com/roksva123/go-clickup/internal/service"
	"github.com/roksva123/go-clickup/model"
)

// ClickUpAPI is the part of *clickup.Client the proxy routes call.
type ClickUpAPI interface {
	service.ClickUp
	GetTeams(ctx context.Context) (*model.Teams, error)
	GetGoals(ctx context.Context, teamID string, includeCompleted bool) (*model.Goals, error)
	GetTasks(ctx context.Context, listID string, q clickup.TaskQuery) (*model.Tasks, error)
	GetTask(ctx context.Context, taskID string) (model.Task, error)
	GetTaskComments(ctx context.Context, taskID string) (*model.Comments, error)
}

// CLICKUP HANDLER

type ClickUpHandler struct {
	Click     ClickUpAPI
	Hierarchy *service.HierarchyService
	Workload  *service.WorkloadService

	// TeamID is used by routes that take an optional team_id query.
	TeamID string
}

func NewClickUpHandler(click ClickUpAPI, workload *service.WorkloadService, teamID string) *ClickUpHandler {
	return &ClickUpHandler{
		Click:     click,
		Hierarchy: service.NewHierarchyService(click),
		Workload:  workload,
		TeamID:    teamID,
	}
}

// respondError maps ClickUp failures onto the proxy's reply: upstream
// statuses pass through, local request errors are 400 and undecodable
// upstream payloads are 502.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var apiErr *clickup.Error
	switch {
	case errors.As(err, &apiErr) && apiErr.StatusCode != 0:
		status = apiErr.StatusCode
	case apiErr != nil:
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrSchema):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func queryBool(c *gin.Context, key string) bool {
	v, _ := strconv.ParseBool(c.Query(key))
	return v
}

const dateLayout = "2006-01-02"

// dateRange reads start_date and end_date as YYYY-MM-DD. The end day is
// included up to its last second.
func dateRange(c *gin.Context) (time.Time, time.Time, error) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, errors.New("start_date and end_date are required")
	}
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid start_date format, use YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid end_date format, use YYYY-MM-DD")
	}
	end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end_date is before start_date")
	}
	return start, end, nil
}

func assignees(c *gin.Context) ([]int64, error) {
	raw := c.Query("assignee")
	if raw == "" {
		return nil, nil
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, errors.New("assignee must be a comma separated list of user ids")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (h *ClickUpHandler) GetTeams(c *gin.Context) {
	teams, err := h.Click.GetTeams(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

func (h *ClickUpHandler) GetSpaces(c *gin.Context) {
	spaces, err := h.Click.GetSpaces(c.Request.Context(), c.Param("team_id"), queryBool(c, "archived"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, spaces)
}

func (h *ClickUpHandler) GetGoals(c *gin.Context) {
	goals, err := h.Click.GetGoals(c.Request.Context(), c.Param("team_id"), queryBool(c, "include_completed"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (h *ClickUpHandler) GetTimeEntries(c *gin.Context) {
	q := clickup.TimeEntryQuery{}
	if c.Query("start_date") != "" || c.Query("end_date") != "" {
		start, end, err := dateRange(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		q.Start, q.End = clickup.Millis(start), clickup.Millis(end)
	}
	ids, err := assignees(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q.Assignees = ids

	entries, err := h.Click.GetTimeEntriesInRange(c.Request.Context(), c.Param("team_id"), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ClickUpHandler) GetWorkload(c *gin.Context) {
	start, end, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ids, err := assignees(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Workload.Summarize(c.Request.Context(), c.Param("team_id"), start, end, ids)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (h *ClickUpHandler) GetHierarchy(c *gin.Context) {
	teamID := c.DefaultQuery("team_id", h.TeamID)
	if teamID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team_id is required"})
		return
	}
	tree, err := h.Hierarchy.Walk(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"spaces": tree})
}

func (h *ClickUpHandler) GetFolders(c *gin.Context) {
	folders, err := h.Click.GetFolders(c.Request.Context(), c.Param("space_id"), queryBool(c, "archived"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, folders)
}

func (h *ClickUpHandler) GetLists(c *gin.Context) {
	lists, err := h.Click.GetLists(c.Request.Context(), c.Param("folder_id"), queryBool(c, "archived"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

func (h *ClickUpHandler) GetTasks(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a non-negative integer"})
		return
	}
	q := clickup.TaskQuery{
		Page:          page,
		Archived:      queryBool(c, "archived"),
		IncludeClosed: queryBool(c, "include_closed"),
		Subtasks:      queryBool(c, "subtasks"),
		OrderBy:       c.Query("order_by"),
		Statuses:      c.QueryArray("status"),
	}
	tasks, err := h.Click.GetTasks(c.Request.Context(), c.Param("list_id"), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *ClickUpHandler) GetTask(c *gin.Context) {
	task, err := h.Click.GetTask(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *ClickUpHandler) GetTaskComments(c *gin.Context) {
	comments, err := h.Click.GetTaskComments(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
