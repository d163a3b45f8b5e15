package cli

import (
	"fmt"
	"os"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/pages"
	"github.com/spf13/cobra"
)

func (a *App) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your seeker profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.seekerProfilePage(cmd)
			if err != nil {
				return err
			}
			page.Load(cmd.Context())
			if page.Err != "" {
				return pageErr(page.Err, nil)
			}

			p := page.Profile
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", p.User.Name, p.User.Email)
			if p.Headline != "" {
				fmt.Fprintln(out, p.Headline)
			}
			if p.Location != "" {
				fmt.Fprintf(out, "location: %s\n", p.Location)
			}
			if p.Summary != "" {
				fmt.Fprintf(out, "\n%s\n", p.Summary)
			}
			if len(p.Skills) > 0 {
				fmt.Fprintln(out, "\nskills:")
				for _, s := range p.Skills {
					fmt.Fprintf(out, "  %s (%s)  [%s]\n", s.Name, s.Level, s.ID)
				}
			}
			if len(p.Experience) > 0 {
				fmt.Fprintln(out, "\nexperience:")
				for _, e := range p.Experience {
					fmt.Fprintf(out, "  %s at %s, %s - %s  [%s]\n", e.Title, e.Company, e.StartDate, e.EndDate, e.ID)
				}
			}
			if len(p.Education) > 0 {
				fmt.Fprintln(out, "\neducation:")
				for _, e := range p.Education {
					fmt.Fprintf(out, "  %s, %s %s, %d-%d  [%s]\n", e.School, e.Degree, e.Field, e.StartYear, e.EndYear, e.ID)
				}
			}
			return nil
		},
	}

	var form api.SeekerProfileForm
	edit := &cobra.Command{
		Use:   "edit",
		Short: "Update headline, summary, location or phone",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.seekerProfilePage(cmd)
			if err != nil {
				return err
			}
			if !page.Save(cmd.Context(), form) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "profile updated")
			return nil
		},
	}
	edit.Flags().StringVar(&form.Headline, "headline", "", "one-line headline")
	edit.Flags().StringVar(&form.Summary, "summary", "", "about-me text")
	edit.Flags().StringVar(&form.Location, "location", "", "where you are")
	edit.Flags().StringVar(&form.Phone, "phone", "", "contact phone")

	cmd.AddCommand(edit, a.skillCmd(), a.experienceCmd(), a.educationCmd(), a.cvCmd())
	return cmd
}

func (a *App) skillCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "skill", Short: "Manage profile skills"}

	var level string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.seekerProfilePage(cmd)
			if err != nil {
				return err
			}
			if !page.AddSkill(cmd.Context(), api.Skill{Name: args[0], Level: level}) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "skill added")
			return nil
		},
	}
	add.Flags().StringVar(&level, "level", "", "beginner, intermediate, advanced or expert")

	remove := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.seekerProfilePage(cmd)
			if err != nil {
				return err
			}
			if !page.RemoveSkill(cmd.Context(), args[0]) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "skill removed")
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func (a *App) experienceCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "experience", Short: "Manage work experience entries"}

	var form api.Experience
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an experience entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.seekerProfilePage(cmd)
			if err != nil {
				return err
			}
			if !page.AddExperience(cmd.Context(), form) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "experience added")
			return nil
		},
	}
	experienceFlags(add, &form)

	remove := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an experience entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.seekerProfilePage(cmd)
			if err != nil {
				return err
			}
			if !page.RemoveExperience(cmd.Context(), args[0]) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "experience removed")
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func experienceFlags(cmd *cobra.Command, form *api.Experience) {
	cmd.Flags().StringVar(&form.Title, "title", "", "role title")
	cmd.Flags().StringVar(&form.Company, "company", "", "employer name")
	cmd.Flags().StringVar(&form.StartDate, "start", "", "start date, e.g. 2021-03")
	cmd.Flags().StringVar(&form.EndDate, "end", "", "end date, empty for current")
	cmd.Flags().StringVar(&form.Description, "description", "", "what you did there")
}

func (a *App) educationCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "education", Short: "Manage education entries"}

	var form api.Education
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an education entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.seekerProfilePage(cmd)
			if err != nil {
				return err
			}
			if !page.AddEducation(cmd.Context(), form) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "education added")
			return nil
		},
	}
	add.Flags().StringVar(&form.School, "school", "", "school name")
	add.Flags().StringVar(&form.Degree, "degree", "", "degree")
	add.Flags().StringVar(&form.Field, "field", "", "field of study")
	add.Flags().IntVar(&form.StartYear, "start", 0, "start year")
	add.Flags().IntVar(&form.EndYear, "end", 0, "end year")

	remove := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an education entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.seekerProfilePage(cmd)
			if err != nil {
				return err
			}
			if !page.RemoveEducation(cmd.Context(), args[0]) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "education removed")
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func (a *App) cvCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "cv",
		Short: "Download your CV as PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.seekerProfilePage(cmd)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			if !page.DownloadCV(cmd.Context(), f) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "cv.pdf", "where to write the PDF")
	return cmd
}

func (a *App) seekerProfilePage(cmd *cobra.Command) (*pages.SeekerProfilePage, error) {
	if err := a.gate(cmd.Context()); err != nil {
		return nil, err
	}
	page := pages.NewSeekerProfilePage(a.client, a.store, a.logger)
	if redirect, ok := page.Enter(); !ok {
		return nil, denied(redirect)
	}
	return page, nil
}

func (a *App) companyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Show your company profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.companyProfilePage(cmd)
			if err != nil {
				return err
			}
			page.Load(cmd.Context())
			if page.Err != "" {
				return pageErr(page.Err, nil)
			}

			p := page.Profile
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", p.User.Name, p.User.Email)
			if p.Industry != "" {
				fmt.Fprintf(out, "industry: %s (%s employees)\n", p.Industry, p.Size)
			}
			if p.Website != "" {
				fmt.Fprintf(out, "website: %s\n", p.Website)
			}
			if p.Location != "" {
				fmt.Fprintf(out, "location: %s\n", p.Location)
			}
			if p.About != "" {
				fmt.Fprintf(out, "\n%s\n", p.About)
			}
			return nil
		},
	}

	var form api.CompanyProfileForm
	edit := &cobra.Command{
		Use:   "edit",
		Short: "Update the company profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.companyProfilePage(cmd)
			if err != nil {
				return err
			}
			if !page.Save(cmd.Context(), form) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "company profile updated")
			return nil
		},
	}
	edit.Flags().StringVar(&form.Website, "website", "", "company website URL")
	edit.Flags().StringVar(&form.Industry, "industry", "", "industry")
	edit.Flags().StringVar(&form.Size, "size", "", "company size bracket")
	edit.Flags().StringVar(&form.About, "about", "", "about the company")
	edit.Flags().StringVar(&form.Location, "location", "", "headquarters location")

	var output string
	pdf := &cobra.Command{
		Use:   "pdf",
		Short: "Download the company profile as PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.companyProfilePage(cmd)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			if !page.DownloadPDF(cmd.Context(), f) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", output)
			return nil
		},
	}
	pdf.Flags().StringVarP(&output, "output", "o", "company-profile.pdf", "where to write the PDF")

	cmd.AddCommand(edit, pdf)
	return cmd
}

func (a *App) companyProfilePage(cmd *cobra.Command) (*pages.CompanyProfilePage, error) {
	if err := a.gate(cmd.Context()); err != nil {
		return nil, err
	}
	page := pages.NewCompanyProfilePage(a.client, a.store, a.logger)
	if redirect, ok := page.Enter(); !ok {
		return nil, denied(redirect)
	}
	return page, nil
}
