package cli

import (
	"fmt"

	"github.com/mehmetcc/oseek/internal/pages"
	"github.com/mehmetcc/oseek/internal/person"
	"github.com/spf13/cobra"
)

func (a *App) adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Moderation commands, admin accounts only",
	}

	users := &cobra.Command{
		Use:   "users",
		Short: "List every account",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.adminPage(cmd)
			if err != nil {
				return err
			}
			page.Load(cmd.Context())
			if page.Err != "" {
				return pageErr(page.Err, nil)
			}

			w := table(cmd)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tSINCE")
			for _, u := range page.Users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					u.ID, u.Name, u.Email, u.Role, u.CreatedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	setRole := &cobra.Command{
		Use:   "set-role <userID> <role>",
		Short: "Change an account's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.adminPage(cmd)
			if err != nil {
				return err
			}
			if !page.SetRole(cmd.Context(), args[0], person.Role(args[1])) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "role updated")
			return nil
		},
	}

	var yes bool
	remove := &cobra.Command{
		Use:   "rm <userID>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.adminPage(cmd)
			if err != nil {
				return err
			}
			if !page.Delete(cmd.Context(), args[0], yes) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "user deleted")
			return nil
		},
	}
	remove.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")

	cmd.AddCommand(users, setRole, remove)
	return cmd
}

func (a *App) adminPage(cmd *cobra.Command) (*pages.AdminUsersPage, error) {
	if err := a.gate(cmd.Context()); err != nil {
		return nil, err
	}
	page := pages.NewAdminUsersPage(a.client, a.store, a.logger)
	if redirect, ok := page.Enter(); !ok {
		return nil, denied(redirect)
	}
	return page, nil
}
