package cli

import (
	"fmt"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/nav"
	"github.com/mehmetcc/oseek/internal/pages"
	"github.com/mehmetcc/oseek/internal/person"
	"github.com/spf13/cobra"
)

func (a *App) loginCmd() *cobra.Command {
	var form api.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := pages.NewLoginPage(a.client, a.store, a.logger)
			if !page.Submit(cmd.Context(), form) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", page.User.Name, page.User.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	return cmd
}

func (a *App) signupCmd() *cobra.Command {
	var (
		form api.SignupRequest
		role string
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log straight in",
		RunE: func(cmd *cobra.Command, args []string) error {
			form.Role = person.Role(role)
			page := pages.NewSignupPage(a.client, a.store, a.logger)
			if !page.Submit(cmd.Context(), form) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "welcome, %s (%s)\n", page.User.Name, page.User.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "display name")
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	cmd.Flags().StringVar(&role, "role", "seeker", "account role, seeker or company")
	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the locally stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := pages.NewAccountPage(a.client, a.store, a.logger)
			if !page.Logout() {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func (a *App) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and what it can reach",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.gate(cmd.Context()); err != nil {
				return err
			}

			cred := a.store.Load()
			if cred.User == nil {
				return fmt.Errorf("session is valid but no user is cached, log in again")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s> role=%s\n", cred.User.Name, cred.User.Email, cred.User.Role)
			fmt.Fprint(out, "pages: ")
			for i, e := range nav.Entries(cred.User.Role, true) {
				if i > 0 {
					fmt.Fprint(out, ", ")
				}
				fmt.Fprint(out, e.Label)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
