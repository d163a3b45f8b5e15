package cli

import (
	"fmt"
	"time"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/pages"
	"github.com/spf13/cobra"
)

func (a *App) applyCmd() *cobra.Command {
	var coverLetter string

	cmd := &cobra.Command{
		Use:   "apply <jobID>",
		Short: "Apply to a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.activityPage(cmd)
			if err != nil {
				return err
			}
			if !page.Apply(cmd.Context(), args[0], api.ApplyRequest{CoverLetter: coverLetter}) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "application sent")
			return nil
		},
	}
	cmd.Flags().StringVar(&coverLetter, "cover-letter", "", "optional cover letter text")
	return cmd
}

func (a *App) activityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "List your applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.activityPage(cmd)
			if err != nil {
				return err
			}
			page.Load(cmd.Context())
			if page.Err != "" {
				return pageErr(page.Err, nil)
			}

			w := table(cmd)
			fmt.Fprintln(w, "ID\tJOB\tSTATUS\tAPPLIED")
			for _, app := range page.Applications {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					app.ID, app.JobTitle, app.Status, app.AppliedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	var yes bool
	withdraw := &cobra.Command{
		Use:   "withdraw <id>",
		Short: "Withdraw one of your applications",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.activityPage(cmd)
			if err != nil {
				return err
			}
			if !page.Withdraw(cmd.Context(), args[0], yes) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "application withdrawn")
			return nil
		},
	}
	withdraw.Flags().BoolVar(&yes, "yes", false, "confirm the withdrawal")

	cmd.AddCommand(withdraw)
	return cmd
}

func (a *App) activityPage(cmd *cobra.Command) (*pages.ActivityPage, error) {
	if err := a.gate(cmd.Context()); err != nil {
		return nil, err
	}
	page := pages.NewActivityPage(a.client, a.store, a.logger)
	if redirect, ok := page.Enter(); !ok {
		return nil, denied(redirect)
	}
	return page, nil
}

func (a *App) applicantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "applicants <jobID>",
		Short: "List applicants for one of your jobs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.applicantsPage(cmd)
			if err != nil {
				return err
			}
			page.Load(cmd.Context(), args[0])
			if page.Err != "" {
				return pageErr(page.Err, nil)
			}

			w := table(cmd)
			fmt.Fprintln(w, "ID\tSEEKER\tSTATUS\tAPPLIED")
			for _, app := range page.Applications {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					app.ID, app.SeekerName, app.Status, app.AppliedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	status := &cobra.Command{
		Use:   "status <applicationID> <status>",
		Short: "Move an application to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.applicantsPage(cmd)
			if err != nil {
				return err
			}
			if !page.UpdateStatus(cmd.Context(), args[0], args[1]) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "status updated")
			return nil
		},
	}

	var interviewForm api.InterviewRequest
	var at string
	interview := &cobra.Command{
		Use:   "interview <applicationID>",
		Short: "Schedule an interview with an applicant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.applicantsPage(cmd)
			if err != nil {
				return err
			}
			when, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("--at must be RFC3339, e.g. 2026-09-15T14:00:00Z: %w", err)
			}
			interviewForm.ScheduledAt = when
			if !page.ScheduleInterview(cmd.Context(), args[0], interviewForm) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "interview scheduled")
			return nil
		},
	}
	interview.Flags().StringVar(&at, "at", "", "interview time, RFC3339")
	interview.Flags().StringVar(&interviewForm.Location, "location", "", "interview location or link")
	interview.Flags().StringVar(&interviewForm.Notes, "notes", "", "notes for the applicant")

	var emailForm api.ApplicationEmailRequest
	email := &cobra.Command{
		Use:   "email <applicationID>",
		Short: "Send a message to an applicant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.applicantsPage(cmd)
			if err != nil {
				return err
			}
			if !page.SendEmail(cmd.Context(), args[0], emailForm) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "email sent")
			return nil
		},
	}
	email.Flags().StringVar(&emailForm.Subject, "subject", "", "email subject")
	email.Flags().StringVar(&emailForm.Body, "body", "", "email body")

	cmd.AddCommand(status, interview, email)
	return cmd
}

func (a *App) applicantsPage(cmd *cobra.Command) (*pages.ApplicantsPage, error) {
	if err := a.gate(cmd.Context()); err != nil {
		return nil, err
	}
	page := pages.NewApplicantsPage(a.client, a.store, a.logger)
	if redirect, ok := page.Enter(); !ok {
		return nil, denied(redirect)
	}
	return page, nil
}
