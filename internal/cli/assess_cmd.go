package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucasferrand/pathex/internal/catalog"
	"github.com/lucasferrand/pathex/internal/cli/formatter"
	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/lucasferrand/pathex/internal/repository"
	"github.com/spf13/cobra"
)

func newAssessCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score and inspect the maturity assessment",
	}

	cmd.AddCommand(
		newAssessShowCmd(app),
		newAssessScoreCmd(app),
		newAssessWizardCmd(app),
	)

	return cmd
}

// currentItems returns the scope's saved item scores, or a fresh unscored
// catalog copy if no assessment has been saved yet.
func currentItems(ctx context.Context, app *App, scope domain.Scope) ([]domain.AssessmentItem, error) {
	a, err := app.Assessments.Get(ctx, scope)
	if errors.Is(err, repository.ErrNotFound) {
		return catalog.NewAssessmentItems(), nil
	}
	if err != nil {
		return nil, err
	}
	return a.Items, nil
}

func newAssessShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current assessment scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			scope, err := app.resolveScope(ctx)
			if err != nil {
				return err
			}

			a, err := app.Assessments.Get(ctx, scope)
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Println("No assessment saved yet. Run `pathex assess wizard` to start.")
				return nil
			}
			if err != nil {
				return err
			}

			headers := []string{"ITEM", "CATEGORY", "SCORE", "GAP"}
			rows := make([][]string, 0, len(a.Items))
			for _, item := range a.Items {
				gap := formatter.Dim("--")
				if item.Gap() > 0 {
					gap = formatter.StyleRed.Render(fmt.Sprintf("%.1f", item.Gap()))
				}
				rows = append(rows, []string{
					formatter.Dim(item.ID),
					string(item.Category),
					fmt.Sprintf("%.1f/%d", item.Achieved, item.MaxScore),
					gap,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			fmt.Printf("\n%s %.1f/%d (%d%%)\n", formatter.Bold("Total"), a.TotalScore, a.MaxScore, a.PercentageScore)
			return nil
		},
	}
}

func newAssessScoreCmd(app *App) *cobra.Command {
	var itemID, comment string
	var score float64

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a single assessment item and re-save",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			scope, err := app.resolveScope(ctx)
			if err != nil {
				return err
			}

			items, err := currentItems(ctx, app, scope)
			if err != nil {
				return err
			}

			found := false
			for i := range items {
				if items[i].ID == itemID {
					items[i].Achieved = score
					if cmd.Flags().Changed("comment") {
						items[i].Comments = comment
					}
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("assessment item not found: %q", itemID)
			}

			saved, err := app.Assessments.Save(ctx, scope, items)
			if err != nil {
				return err
			}
			fmt.Printf("Saved. Score %.1f/%d (%d%%), %d improvement actions.\n",
				saved.TotalScore, saved.MaxScore, saved.PercentageScore, len(saved.ImprovementActions))
			return nil
		},
	}

	cmd.Flags().StringVar(&itemID, "item", "", "Assessment item ID (e.g. 1.4.1)")
	cmd.Flags().Float64Var(&score, "score", 0, "Achieved score")
	cmd.Flags().StringVar(&comment, "comment", "", "Assessor comment")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("score")
	return cmd
}

func newAssessWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Score the full assessment interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the wizard needs an interactive terminal; use `pathex assess score` instead")
			}

			ctx := context.Background()
			scope, err := app.resolveScope(ctx)
			if err != nil {
				return err
			}

			items, err := currentItems(ctx, app, scope)
			if err != nil {
				return err
			}

			if err := runScoreWizard(items); err != nil {
				return err
			}

			saved, err := app.Assessments.Save(ctx, scope, items)
			if err != nil {
				return err
			}
			fmt.Printf("Saved. Score %.1f/%d (%d%%), %d improvement actions.\n",
				saved.TotalScore, saved.MaxScore, saved.PercentageScore, len(saved.ImprovementActions))
			return nil
		},
	}
}
