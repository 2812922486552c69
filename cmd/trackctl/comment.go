package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) commentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Manage task comments",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <task_id> <content>",
			Short: "Comment on a task",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				cl, err := c.client()
				if err != nil {
					return err
				}
				comment, err := cl.AddComment(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return c.print(comment)
			},
		},
		&cobra.Command{
			Use:   "edit <comment_id> <content>",
			Short: "Edit your comment",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				cl, err := c.client()
				if err != nil {
					return err
				}
				comment, err := cl.EditComment(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return c.print(comment)
			},
		},
	)

	return cmd
}
