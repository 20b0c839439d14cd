package cli

import (
	"context"
	"fmt"

	"github.com/lucasferrand/pathex/internal/cli/formatter"
	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/spf13/cobra"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage client engagements",
	}

	cmd.AddCommand(
		newClientAddCmd(app),
		newClientListCmd(app),
		newClientArchiveCmd(app),
		newClientRemoveCmd(app),
	)

	return cmd
}

func newClientAddCmd(app *App) *cobra.Command {
	var site string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new client engagement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Client{Name: args[0], Site: site}
			if err := app.Clients.Create(context.Background(), c); err != nil {
				return err
			}
			fmt.Printf("Created client %s (%s)\n", c.Name, c.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&site, "site", "", "Plant or site name")
	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List client engagements",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := app.Clients.List(context.Background(), includeArchived)
			if err != nil {
				return err
			}
			if len(clients) == 0 {
				fmt.Println("No clients. Use `pathex client add` to create one.")
				return nil
			}

			headers := []string{"ID", "NAME", "SITE", "STATUS"}
			rows := make([][]string, 0, len(clients))
			for _, c := range clients {
				rows = append(rows, []string{
					formatter.Dim(c.DisplayID()),
					formatter.Bold(c.Name),
					c.Site,
					string(c.Status),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&includeArchived, "all", "a", false, "Include archived clients")
	return cmd
}

func newClientArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a client engagement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Clients.Archive(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Archived.")
			return nil
		},
	}
}

func newClientRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a client engagement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Clients.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
