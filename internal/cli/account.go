package cli

import (
	"fmt"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/pages"
	"github.com/spf13/cobra"
)

func (a *App) accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Password, deletion and local preferences",
	}

	var pwForm api.ChangePasswordRequest
	changePassword := &cobra.Command{
		Use:   "change-password",
		Short: "Change your password",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.accountPage(cmd)
			if err != nil {
				return err
			}
			if !page.ChangePassword(cmd.Context(), pwForm) {
				return pageErr(page.Err, page.FieldErrors)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "password changed")
			return nil
		},
	}
	changePassword.Flags().StringVar(&pwForm.CurrentPassword, "current", "", "current password")
	changePassword.Flags().StringVar(&pwForm.NewPassword, "new", "", "new password")

	var (
		password string
		confirm  string
	)
	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete your account permanently",
		Long: "Delete your account permanently. Pass either --password or\n" +
			"--confirm " + pages.DeleteConfirmPhrase + "; without one of them nothing is sent.",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.accountPage(cmd)
			if err != nil {
				return err
			}
			if !page.DeleteAccount(cmd.Context(), password, confirm) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "account deleted, sorry to see you go")
			return nil
		},
	}
	del.Flags().StringVar(&password, "password", "", "re-enter your password")
	del.Flags().StringVar(&confirm, "confirm", "", "or type "+pages.DeleteConfirmPhrase)

	theme := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the UI theme preference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := pages.NewAccountPage(a.client, a.store, a.logger)
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), page.Theme())
				return nil
			}
			if !page.SetTheme(args[0]) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(changePassword, del, theme)
	return cmd
}

func (a *App) accountPage(cmd *cobra.Command) (*pages.AccountPage, error) {
	if err := a.gate(cmd.Context()); err != nil {
		return nil, err
	}
	return pages.NewAccountPage(a.client, a.store, a.logger), nil
}
