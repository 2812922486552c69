package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	var status string
	tasksCmd := &cobra.Command{
		Use:   "tasks <project_id>",
		Short: "List project tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := c.client()
			if err != nil {
				return err
			}
			tasks, err := cl.ListProjectTasks(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}
			return c.print(tasks)
		},
	}
	tasksCmd.Flags().StringVar(&status, "status", "", "filter by status (TODO, IN_PROGRESS, DONE)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a project owned by you",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cl, err := c.client()
				if err != nil {
					return err
				}
				project, err := cl.CreateProject(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.print(project)
			},
		},
		&cobra.Command{
			Use:   "get <project_id>",
			Short: "Show a project with its members",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cl, err := c.client()
				if err != nil {
					return err
				}
				project, err := cl.GetProject(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.print(project)
			},
		},
		&cobra.Command{
			Use:   "add-member <project_id> <user_id>",
			Short: "Add a user to a project",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				cl, err := c.client()
				if err != nil {
					return err
				}
				project, err := cl.AddMember(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return c.print(project)
			},
		},
		tasksCmd,
	)

	return cmd
}
