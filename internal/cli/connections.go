package cli

import (
	"fmt"

	"github.com/mehmetcc/oseek/internal/pages"
	"github.com/spf13/cobra"
)

func (a *App) connectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connections",
		Short: "List your connections and pending requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.connectionsPage(cmd)
			if err != nil {
				return err
			}
			page.Load(cmd.Context())
			if page.Err != "" {
				return pageErr(page.Err, nil)
			}

			w := table(cmd)
			fmt.Fprintln(w, "ID\tFROM\tTO\tSTATUS")
			for _, c := range page.Connections {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.RequesterName, c.AddresseeName, c.Status)
			}
			return w.Flush()
		},
	}

	request := &cobra.Command{
		Use:   "request <userID>",
		Short: "Send a connection request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.connectionsPage(cmd)
			if err != nil {
				return err
			}
			if !page.Request(cmd.Context(), args[0]) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "request sent")
			return nil
		},
	}

	accept := &cobra.Command{
		Use:   "accept <id>",
		Short: "Accept a pending request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.connectionsPage(cmd)
			if err != nil {
				return err
			}
			if !page.Accept(cmd.Context(), args[0]) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "connection accepted")
			return nil
		},
	}

	reject := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a pending request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.connectionsPage(cmd)
			if err != nil {
				return err
			}
			if !page.Reject(cmd.Context(), args[0]) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "request rejected")
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an existing connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.connectionsPage(cmd)
			if err != nil {
				return err
			}
			if !page.Remove(cmd.Context(), args[0]) {
				return pageErr(page.Err, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "connection removed")
			return nil
		},
	}

	cmd.AddCommand(request, accept, reject, remove)
	return cmd
}

func (a *App) connectionsPage(cmd *cobra.Command) (*pages.ConnectionsPage, error) {
	if err := a.gate(cmd.Context()); err != nil {
		return nil, err
	}
	page := pages.NewConnectionsPage(a.client, a.store, a.logger)
	if redirect, ok := page.Enter(); !ok {
		return nil, denied(redirect)
	}
	return page, nil
}
