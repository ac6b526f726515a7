package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNotificationsCmd() *cobra.Command {
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notify"},
		Short:   "Show notifications",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notifications := current.engine.Notifications()
			if unreadOnly {
				kept := notifications[:0]
				for _, n := range notifications {
					if !n.Read {
						kept = append(kept, n)
					}
				}
				notifications = kept
			}

			if flags.jsonMode {
				return printJSON(cmd, notifications)
			}
			if len(notifications) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notifications")
				return nil
			}
			for _, n := range notifications {
				marker := " "
				if !n.Read {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %s: %s (%s)\n",
					marker, n.Type, n.Title, n.Message, n.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "show unread notifications only")

	cmd.AddCommand(&cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current.engine.MarkNotificationRead(args[0])
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current.engine.MarkAllNotificationsRead()
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <notification-id>",
		Short: "Delete one notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current.engine.RemoveNotification(args[0])
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current.engine.ClearNotifications()
			fmt.Fprintln(cmd.OutOrStdout(), "Notifications cleared")
			return nil
		},
	})

	return cmd
}
