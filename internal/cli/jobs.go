package cli

import (
	"fmt"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/pages"
	"github.com/spf13/cobra"
)

func (a *App) jobsCmd() *cobra.Command {
	var search api.JobSearch

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse the public job board",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := pages.NewJobsPage(a.client, a.logger)
			page.Load(cmd.Context(), search)
			if page.Err != "" {
				return pageErr(page.Err, nil)
			}

			w := table(cmd)
			fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION\tSALARY")
			for _, j := range page.Jobs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", j.ID, j.Title, j.CompanyName, j.Location, j.SalaryRange)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&search.Query, "query", "q", "", "match against title and description")
	cmd.Flags().StringVarP(&search.Location, "location", "l", "", "filter by location")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := pages.NewJobsPage(a.client, a.logger)
			page.Show(cmd.Context(), args[0])
			if page.Err != "" {
				return pageErr(page.Err, nil)
			}

			j := page.Selected
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s at %s (%s)\n", j.Title, j.CompanyName, j.Location)
			if j.SalaryRange != "" {
				fmt.Fprintf(out, "salary: %s\n", j.SalaryRange)
			}
			if len(j.TechStack) > 0 {
				fmt.Fprintf(out, "stack: %v\n", j.TechStack)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, j.Description)
			return nil
		},
	})
	return cmd
}

func (a *App) myJobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "myjobs",
		Short: "Manage your company's postings",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.myJobsPage(cmd)
			if err != nil {
				return err
			}
			page.Load(cmd.Context())
			if page.Err != "" {
				return pageErr(page.Err, nil)
			}

			w := table(cmd)
			fmt.Fprintln(w, "ID\tTITLE\tLOCATION\tSTATUS")
			for _, j := range page.Jobs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", j.ID, j.Title, j.Location, j.Status)
			}
			return w.Flush()
		},
	}

	var form api.JobForm
	create := &cobra.Command{
		Use:   "create",
		Short: "Post a new job",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.myJobsPage(cmd)
			if err != nil {
				return err
			}
			if !page.Create(cmd.Context(), form) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "posted %q\n", form.Title)
			return nil
		},
	}
	jobFormFlags(create, &form)

	var updateForm api.JobForm
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit one of your postings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.myJobsPage(cmd)
			if err != nil {
				return err
			}
			if !page.Update(cmd.Context(), args[0], updateForm) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "job updated")
			return nil
		},
	}
	jobFormFlags(update, &updateForm)

	var yes bool
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your postings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.myJobsPage(cmd)
			if err != nil {
				return err
			}
			if !page.Delete(cmd.Context(), args[0], yes) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "job deleted")
			return nil
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")

	cmd.AddCommand(create, update, del)
	return cmd
}

func (a *App) myJobsPage(cmd *cobra.Command) (*pages.MyJobsPage, error) {
	if err := a.gate(cmd.Context()); err != nil {
		return nil, err
	}
	page := pages.NewMyJobsPage(a.client, a.store, a.logger)
	if redirect, ok := page.Enter(); !ok {
		return nil, denied(redirect)
	}
	return page, nil
}

func jobFormFlags(cmd *cobra.Command, form *api.JobForm) {
	cmd.Flags().StringVar(&form.Title, "title", "", "job title")
	cmd.Flags().StringVar(&form.Description, "description", "", "job description")
	cmd.Flags().StringVar(&form.Location, "location", "", "job location")
	cmd.Flags().StringVar(&form.SalaryRange, "salary", "", "salary range")
	cmd.Flags().StringSliceVar(&form.TechStack, "stack", nil, "tech stack entries")
}
