package cli

import (
	"fmt"
	"time"

	"github.com/mehmetcc/oseek/internal/pages"
	"github.com/spf13/cobra"
)

func (a *App) notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "List your notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.notificationsPage(cmd)
			if err != nil {
				return err
			}
			page.Load(cmd.Context())
			if page.Err != "" {
				return pageErr(page.Err, nil)
			}

			w := table(cmd)
			fmt.Fprintln(w, "ID\tREAD\tWHEN\tMESSAGE")
			for _, n := range page.Items {
				read := " "
				if n.Read {
					read = "x"
				}
				fmt.Fprintf(w, "%s\t[%s]\t%s\t%s\n",
					n.ID, read, n.CreatedAt.Format("2006-01-02 15:04"), n.Message)
			}
			return w.Flush()
		},
	}

	read := &cobra.Command{
		Use:   "read <id>",
		Short: "Mark one notification read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.notificationsPage(cmd)
			if err != nil {
				return err
			}
			if !page.MarkRead(cmd.Context(), args[0]) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "marked read")
			return nil
		},
	}

	readAll := &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification read",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.notificationsPage(cmd)
			if err != nil {
				return err
			}
			if !page.MarkAllRead(cmd.Context()) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "all marked read")
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete one notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.notificationsPage(cmd)
			if err != nil {
				return err
			}
			if !page.Delete(cmd.Context(), args[0]) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "notification deleted")
			return nil
		},
	}

	watch := &cobra.Command{
		Use:   "watch",
		Short: "Follow the unread badge until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.gate(cmd.Context()); err != nil {
				return err
			}
			return a.watchUnread(cmd)
		},
	}

	cmd.AddCommand(read, readAll, remove, watch)
	return cmd
}

func (a *App) notificationsPage(cmd *cobra.Command) (*pages.NotificationsPage, error) {
	if err := a.gate(cmd.Context()); err != nil {
		return nil, err
	}
	return pages.NewNotificationsPage(a.client, a.logger), nil
}

// watchUnread runs the badge poller in the foreground and additionally
// follows the credential store, so a logout in another terminal ends the
// watch instead of looping on 401s.
func (a *App) watchUnread(cmd *cobra.Command) error {
	interval := a.cfg.PollConfig.UnreadInterval

	poller := pages.NewUnreadPoller(a.client, interval, a.logger)
	poller.Start(cmd.Context())
	defer poller.Stop()

	updates, cancel := a.store.Subscribe()
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "watching unread notifications every %s, ctrl-c to stop\n", interval)

	last := -1
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case cred := <-updates:
			if cred.Token == "" {
				fmt.Fprintln(out, "session ended elsewhere, stopping")
				return nil
			}
		case <-ticker.C:
			if count := poller.Count(); count != last {
				fmt.Fprintf(out, "%s  unread: %d\n", time.Now().Format("15:04:05"), count)
				last = count
			}
		}
	}
}
