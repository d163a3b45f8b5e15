package cli

import (
	"fmt"

	"github.com/mehmetcc/oseek/internal/pages"
	"github.com/spf13/cobra"
)

func (a *App) recommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Show jobs matched against your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.gate(cmd.Context()); err != nil {
				return err
			}
			page := pages.NewRecommendationsPage(a.client, a.store, a.logger)
			if redirect, ok := page.Enter(); !ok {
				return denied(redirect)
			}

			page.Load(cmd.Context())
			if page.Err != "" {
				// an empty-profile or no-matches reason is advice, not failure
				if page.Reason != "" {
					fmt.Fprintln(cmd.OutOrStdout(), page.Err)
					return nil
				}
				return pageErr(page.Err, nil)
			}

			w := table(cmd)
			fmt.Fprintln(w, "SCORE\tTITLE\tCOMPANY\tLOCATION\tID")
			for _, rec := range page.Recommendations {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					pages.ScoreBar(rec.Score, 10), rec.Job.Title, rec.Job.CompanyName, rec.Job.Location, rec.Job.ID)
			}
			return w.Flush()
		},
	}
}
