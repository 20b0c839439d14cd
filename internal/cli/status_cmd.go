package cli

import (
	"context"
	"fmt"

	"github.com/lucasferrand/pathex/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the program dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			scope, err := app.resolveScope(ctx)
			if err != nil {
				return err
			}

			resp, err := app.Status.GetStatus(ctx, scope)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatStatus(resp))
			return nil
		},
	}
}
