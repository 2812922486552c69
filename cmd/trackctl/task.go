package main

import (
	"github.com/spf13/cobra"

	"github.com/aidar/task-tracker/internal/domain"
)

func (c *cli) taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	var description string
	createCmd := &cobra.Command{
		Use:   "create <project_id> <title>",
		Short: "Create a task in a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := c.client()
			if err != nil {
				return err
			}
			task, err := cl.CreateTask(cmd.Context(), args[0], args[1], description)
			if err != nil {
				return err
			}
			return c.print(task)
		},
	}
	createCmd.Flags().StringVarP(&description, "description", "d", "", "task description")

	cmd.AddCommand(
		createCmd,
		&cobra.Command{
			Use:   "get <task_id>",
			Short: "Show a task with its comments",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cl, err := c.client()
				if err != nil {
					return err
				}
				task, err := cl.GetTask(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.print(task)
			},
		},
		&cobra.Command{
			Use:   "status <task_id> <status>",
			Short: "Change task status (TODO, IN_PROGRESS, DONE)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				cl, err := c.client()
				if err != nil {
					return err
				}
				task, err := cl.ChangeStatus(cmd.Context(), args[0], domain.TaskStatus(args[1]))
				if err != nil {
					return err
				}
				return c.print(task)
			},
		},
		&cobra.Command{
			Use:   "assign <task_id> [user_id]",
			Short: "Assign a task; without user_id the task is unassigned",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				cl, err := c.client()
				if err != nil {
					return err
				}
				task, err := cl.Assign(cmd.Context(), args[0], optionalArg(args[1:]))
				if err != nil {
					return err
				}
				return c.print(task)
			},
		},
		&cobra.Command{
			Use:   "auto-assign <task_id>",
			Short: "Assign a random project member other than the current assignee",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cl, err := c.client()
				if err != nil {
					return err
				}
				task, assignedTo, err := cl.AutoAssign(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.print(map[string]any{"task": task, "assigned_to": assignedTo})
			},
		},
	)

	return cmd
}
