package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/roksva123/go-clickup/internal/service"
)

func hierarchyCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "hierarchy [team_id]",
		Short: "Show the spaces, folders and lists of a workspace",
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
			tree, err := service.NewHierarchyService(c).Walk(cmd.Context(), teamID)
			if err != nil {
				return err
			}
			return o.print(cmd, map[string]any{"spaces": tree})
		},
	}
}

func workloadCmd(o *options) *cobra.Command {
	var start, end string
	var assignees []int64
	cmd := &cobra.Command{
		Use:   "workload [team_id]",
		Short: "Total tracked hours per user and rate them against the weekly bands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if start == "" || end == "" {
				return errors.New("--start and --end are required")
			}
			from, err := parseDate("start", start)
			if err != nil {
				return err
			}
			to, err := parseDate("end", end)
			if err != nil {
				return err
			}
			teamID, err := o.teamID(args)
			if err != nil {
				return err
			}
			c, err := o.client()
			if err != nil {
				return err
			}
			bands := service.Bands{
				Underload: o.cfg.WorkloadUnderload,
				NormalMin: o.cfg.WorkloadNormalMin,
				NormalMax: o.cfg.WorkloadNormalMax,
				Overload:  o.cfg.WorkloadOverload,
			}
			out, err := service.NewWorkloadService(c, bands).Summarize(cmd.Context(), teamID, from, to.Add(24*time.Hour-time.Millisecond), assignees)
			if err != nil {
				return err
			}
			return o.print(cmd, map[string]any{"data": out})
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "last day, YYYY-MM-DD")
	cmd.Flags().Int64SliceVar(&assignees, "assignee", nil, "user ids to include")
	return cmd
}
