package main

import (
	"github.com/spf13/cobra"
)

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func (c *cli) userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <username> <email>",
			Short: "Register a user",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				cl, err := c.client()
				if err != nil {
					return err
				}
				user, err := cl.CreateUser(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return c.print(user)
			},
		},
		&cobra.Command{
			Use:   "get [user_id]",
			Short: "Show a user (default: yourself)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cl, err := c.client()
				if err != nil {
					return err
				}
				user, err := cl.GetUser(cmd.Context(), optionalArg(args))
				if err != nil {
					return err
				}
				return c.print(user)
			},
		},
		&cobra.Command{
			Use:   "tasks [user_id]",
			Short: "List tasks assigned to a user",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cl, err := c.client()
				if err != nil {
					return err
				}
				tasks, err := cl.GetUserTasks(cmd.Context(), optionalArg(args))
				if err != nil {
					return err
				}
				return c.print(tasks)
			},
		},
		&cobra.Command{
			Use:   "projects [user_id]",
			Short: "List projects a user belongs to",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cl, err := c.client()
				if err != nil {
					return err
				}
				projects, err := cl.GetUserProjects(cmd.Context(), optionalArg(args))
				if err != nil {
					return err
				}
				return c.print(projects)
			},
		},
	)

	return cmd
}
