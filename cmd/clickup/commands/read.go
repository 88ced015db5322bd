package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/roksva123/go-clickup/clickup"
)

func teamsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List the workspaces the token can access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			teams, err := c.GetTeams(cmd.Context())
			if err != nil {
				return err
			}
			return o.print(cmd, teams)
		},
	}
}

func spacesCmd(o *options) *cobra.Command {
	var archived bool
	cmd := &cobra.Command{
		Use:   "spaces [team_id]",
		Short: "List the spaces of a workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := o.teamID(args)
			if err != nil {
				return err
			}
			c, err := o.client()
			if err != nil {
				return err
			}
			spaces, err := c.GetSpaces(cmd.Context(), teamID, archived)
			if err != nil {
				return err
			}
			return o.print(cmd, spaces)
		},
	}
	cmd.Flags().BoolVar(&archived, "archived", false, "include archived spaces")
	return cmd
}

func foldersCmd(o *options) *cobra.Command {
	var archived bool
	cmd := &cobra.Command{
		Use:   "folders <space_id>",
		Short: "List the folders of a space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			folders, err := c.GetFolders(cmd.Context(), args[0], archived)
			if err != nil {
				return err
			}
			return o.print(cmd, folders)
		},
	}
	cmd.Flags().BoolVar(&archived, "archived", false, "include archived folders")
	return cmd
}

func listsCmd(o *options) *cobra.Command {
	var archived, folderless bool
	cmd := &cobra.Command{
		Use:   "lists <folder_id>",
		Short: "List the lists of a folder, or of a space with --folderless",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			get := c.GetLists
			if folderless {
				get = c.GetFolderlessLists
			}
			lists, err := get(cmd.Context(), args[0], archived)
			if err != nil {
				return err
			}
			return o.print(cmd, lists)
		},
	}
	cmd.Flags().BoolVar(&archived, "archived", false, "include archived lists")
	cmd.Flags().BoolVar(&folderless, "folderless", false, "treat the argument as a space id and list its folderless lists")
	return cmd
}

func tasksCmd(o *options) *cobra.Command {
	var q clickup.TaskQuery
	cmd := &cobra.Command{
		Use:   "tasks <list_id>",
		Short: "List one page of the tasks in a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			tasks, err := c.GetTasks(cmd.Context(), args[0], q)
			if err != nil {
				return err
			}
			return o.print(cmd, tasks)
		},
	}
	cmd.Flags().IntVar(&q.Page, "page", 0, "page number, starting at 0")
	cmd.Flags().BoolVar(&q.Archived, "archived", false, "include archived tasks")
	cmd.Flags().BoolVar(&q.IncludeClosed, "include-closed", false, "include closed tasks")
	cmd.Flags().BoolVar(&q.Subtasks, "subtasks", false, "include subtasks")
	cmd.Flags().StringVar(&q.OrderBy, "order-by", "", "id, created, updated or due_date")
	cmd.Flags().StringSliceVar(&q.Statuses, "status", nil, "only tasks in these statuses")
	return cmd
}

func taskCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "task <task_id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			task, err := c.GetTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return o.print(cmd, task)
		},
	}
}

func commentsCmd(o *options) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "comments <task_id>",
		Short: "List the comments on a task, or on a list with --list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			get := c.GetTaskComments
			if list {
				get = c.GetListComments
			}
			comments, err := get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return o.print(cmd, comments)
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "treat the argument as a list id")
	return cmd
}

func goalsCmd(o *options) *cobra.Command {
	var includeCompleted bool
	cmd := &cobra.Command{
		Use:   "goals [team_id]",
		Short: "List the goals of a workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := o.teamID(args)
			if err != nil {
				return err
			}
			c, err := o.client()
			if err != nil {
				return err
			}
			goals, err := c.GetGoals(cmd.Context(), teamID, includeCompleted)
			if err != nil {
				return err
			}
			return o.print(cmd, goals)
		},
	}
	cmd.Flags().BoolVar(&includeCompleted, "include-completed", false, "include completed goals")
	return cmd
}

func timeEntriesCmd(o *options) *cobra.Command {
	var start, end string
	var assignees []int64
	cmd := &cobra.Command{
		Use:   "time-entries [team_id]",
		Short: "List time entries, by default the last 30 days of your own",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := o.teamID(args)
			if err != nil {
				return err
			}
			q := clickup.TimeEntryQuery{Assignees: assignees}
			if start != "" {
				t, err := parseDate("start", start)
				if err != nil {
					return err
				}
				q.Start = clickup.Millis(t)
			}
			if end != "" {
				t, err := parseDate("end", end)
				if err != nil {
					return err
				}
				q.End = clickup.Millis(t.Add(24*time.Hour - time.Millisecond))
			}
			c, err := o.client()
			if err != nil {
				return err
			}
			entries, err := c.GetTimeEntriesInRange(cmd.Context(), teamID, q)
			if err != nil {
				return err
			}
			return o.print(cmd, entries)
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "last day, YYYY-MM-DD")
	cmd.Flags().Int64SliceVar(&assignees, "assignee", nil, "user ids to include")
	return cmd
}
