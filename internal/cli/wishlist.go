package cli

import (
	"fmt"

	"github.com/mehmetcc/oseek/internal/pages"
	"github.com/spf13/cobra"
)

func (a *App) wishlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "List your saved jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.wishlistPage(cmd)
			if err != nil {
				return err
			}
			page.Load(cmd.Context())
			if page.Err != "" {
				return pageErr(page.Err, nil)
			}

			w := table(cmd)
			fmt.Fprintln(w, "JOB ID\tTITLE\tCOMPANY\tSAVED")
			for _, it := range page.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					it.JobID, it.Job.Title, it.Job.CompanyName, it.AddedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <jobID>",
		Short: "Save a job, or unsave it if already saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.wishlistPage(cmd)
			if err != nil {
				return err
			}
			page.LoadStatuses(cmd.Context(), args)
			if !page.Toggle(cmd.Context(), args[0]) {
				return pageErr(page.Err, nil)
			}
			if page.Statuses[args[0]] {
				fmt.Fprintln(cmd.OutOrStdout(), "job saved")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "job unsaved")
			}
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "rm <jobID>",
		Short: "Remove a job from your wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.wishlistPage(cmd)
			if err != nil {
				return err
			}
			if !page.Remove(cmd.Context(), args[0]) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "job removed from wishlist")
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status <jobID>...",
		Short: "Check which of the given jobs are saved",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.wishlistPage(cmd)
			if err != nil {
				return err
			}
			page.LoadStatuses(cmd.Context(), args)

			w := table(cmd)
			fmt.Fprintln(w, "JOB ID\tSAVED")
			for _, id := range args {
				saved, known := page.Statuses[id]
				switch {
				case !known:
					fmt.Fprintf(w, "%s\t?\n", id)
				case saved:
					fmt.Fprintf(w, "%s\tyes\n", id)
				default:
					fmt.Fprintf(w, "%s\tno\n", id)
				}
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(toggle, remove, status)
	return cmd
}

func (a *App) wishlistPage(cmd *cobra.Command) (*pages.WishlistPage, error) {
	if err := a.gate(cmd.Context()); err != nil {
		return nil, err
	}
	page := pages.NewWishlistPage(a.client, a.store, a.logger)
	if redirect, ok := page.Enter(); !ok {
		return nil, denied(redirect)
	}
	return page, nil
}
