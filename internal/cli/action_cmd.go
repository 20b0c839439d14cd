package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucasferrand/pathex/internal/cli/formatter"
	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/lucasferrand/pathex/internal/repository"
	"github.com/spf13/cobra"
)

func newActionsCmd(app *App) *cobra.Command {
	var phase int

	cmd := &cobra.Command{
		Use:   "actions",
		Short: "List prioritized improvement actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			scope, err := app.resolveScope(ctx)
			if err != nil {
				return err
			}

			var actions []domain.ImprovementAction
			if cmd.Flags().Changed("phase") {
				actions, err = app.Assessments.ActionsForPhase(ctx, scope, phase)
			} else {
				actions, err = app.Assessments.Actions(ctx, scope)
			}
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Println("No assessment saved yet. Run `pathex assess wizard` to start.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatActions(actions))
			return nil
		},
	}

	cmd.Flags().IntVar(&phase, "phase", 0, "Limit to one implementation phase (1-6)")
	return cmd
}
