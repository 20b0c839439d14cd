package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasferrand/pathex/internal/catalog"
	"github.com/lucasferrand/pathex/internal/cli/formatter"
	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/lucasferrand/pathex/internal/engine"
	"github.com/spf13/cobra"
)

func newPhaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Work an implementation phase checklist",
	}

	cmd.AddCommand(
		newPhaseShowCmd(app),
		newPhaseCheckCmd(app, true),
		newPhaseCheckCmd(app, false),
		newPhaseNotesCmd(app),
		newPhaseCompleteCmd(app),
		newPhaseReopenCmd(app),
		newPhaseToggleCmd(app),
	)

	return cmd
}

func parsePhaseArg(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || !domain.ValidPhase(n) {
		return 0, fmt.Errorf("phase must be a number between %d and %d", domain.FirstPhase, domain.LastPhase)
	}
	return n, nil
}

func newPhaseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PHASE",
		Short: "Show a phase checklist and progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phase, err := parsePhaseArg(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			scope, err := app.resolveScope(ctx)
			if err != nil {
				return err
			}
			prog, err := app.Progress.Get(ctx, scope)
			if err != nil {
				return err
			}

			pp := prog.Phase(phase)
			items := catalog.PhaseChecklist(phase)

			var b strings.Builder
			b.WriteString(formatter.Header(fmt.Sprintf("Phase %d — %s", phase, catalog.PhaseTitle(phase))) + "\n")
			b.WriteString(fmt.Sprintf("%s  %s\n\n", formatter.RenderProgress(pp.Progress, 10), formatter.StateIndicator(engine.StateOf(pp))))
			b.WriteString(formatter.FormatChecklist(items, pp.Checklist))
			if pp.Notes != "" {
				b.WriteString("\n" + formatter.Dim("Notes: "+pp.Notes) + "\n")
			}
			if pp.CompletedAt != nil {
				b.WriteString(formatter.Dim("Completed "+pp.CompletedAt.Format("2006-01-02")) + "\n")
			}
			fmt.Print(b.String())
			return nil
		},
	}
}

func newPhaseCheckCmd(app *App, done bool) *cobra.Command {
	use, short := "check PHASE ITEM", "Mark a checklist item done"
	if !done {
		use, short = "uncheck PHASE ITEM", "Mark a checklist item not done"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			phase, err := parsePhaseArg(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			scope, err := app.resolveScope(ctx)
			if err != nil {
				return err
			}

			pp, err := app.Progress.Toggle(ctx, scope, phase, args[1], done)
			if err != nil {
				return err
			}
			fmt.Printf("Phase %d at %d%%.\n", phase, pp.Progress)
			return nil
		},
	}
}

func newPhaseNotesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "notes PHASE TEXT",
		Short: "Set the free-text notes of a phase",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			phase, err := parsePhaseArg(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			scope, err := app.resolveScope(ctx)
			if err != nil {
				return err
			}

			if err := app.Progress.SetNotes(ctx, scope, phase, strings.Join(args[1:], " ")); err != nil {
				return err
			}
			fmt.Println("Notes saved.")
			return nil
		},
	}
}

func newPhaseCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete PHASE",
		Short: "Mark a phase completed (requires 100% checklist)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phase, err := parsePhaseArg(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			scope, err := app.resolveScope(ctx)
			if err != nil {
				return err
			}

			pp, err := app.Progress.Complete(ctx, scope, phase)
			if errors.Is(err, engine.ErrPhaseIncomplete) {
				return fmt.Errorf("phase %d is not at 100%%; finish its checklist first", phase)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Phase %d completed on %s.\n", phase, pp.CompletedAt.Format("2006-01-02"))
			return nil
		},
	}
}

func newPhaseReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen PHASE",
		Short: "Reopen a completed phase (checklist is preserved)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phase, err := parsePhaseArg(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			scope, err := app.resolveScope(ctx)
			if err != nil {
				return err
			}

			if _, err := app.Progress.Reopen(ctx, scope, phase); err != nil {
				return err
			}
			fmt.Printf("Phase %d reopened.\n", phase)
			return nil
		},
	}
}

func newPhaseToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle PHASE",
		Short: "Toggle checklist items interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("interactive toggle needs a terminal; use `pathex phase check` instead")
			}

			phase, err := parsePhaseArg(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			scope, err := app.resolveScope(ctx)
			if err != nil {
				return err
			}

			return runChecklistView(ctx, app, scope, phase)
		},
	}
}
