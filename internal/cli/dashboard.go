package cli

import (
	"fmt"

	"github.com/mehmetcc/oseek/internal/pages"
	"github.com/spf13/cobra"
)

func (a *App) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard for your role",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.gate(cmd.Context()); err != nil {
				return err
			}

			page := pages.NewDashboardPage(a.client, a.store, a.logger)
			page.Load(cmd.Context())
			if page.Err != "" {
				return pageErr(page.Err, nil)
			}

			out := cmd.OutOrStdout()
			switch {
			case page.Seeker != nil:
				d := page.Seeker
				fmt.Fprintf(out, "applications: %d (%d pending)\n", d.ApplicationsTotal, d.ApplicationsPending)
				fmt.Fprintf(out, "wishlist: %d\n", d.WishlistCount)
				fmt.Fprintf(out, "unread notifications: %d\n", d.UnreadNotifications)
				fmt.Fprintf(out, "profile: %s\n", pages.ScoreBar(d.ProfileCompleteness, 10))
			case page.Company != nil:
				d := page.Company
				fmt.Fprintf(out, "open jobs: %d\n", d.OpenJobs)
				fmt.Fprintf(out, "applicants: %d (%d new)\n", d.TotalApplicants, d.NewApplicants)
				fmt.Fprintf(out, "unread notifications: %d\n", d.UnreadNotifications)
			case page.Admin != nil:
				d := page.Admin
				fmt.Fprintf(out, "users: %d (%d seekers, %d companies)\n", d.TotalUsers, d.Seekers, d.Companies)
				fmt.Fprintf(out, "jobs: %d\n", d.JobsTotal)
				fmt.Fprintf(out, "applications: %d\n", d.ApplicationsTotal)
			}
			return nil
		},
	}
}
