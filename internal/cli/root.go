package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucasferrand/pathex/internal/domain"
	"github.com/lucasferrand/pathex/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Clients     service.ClientService
	Assessments service.AssessmentService
	Progress    service.ProgressService
	Status      service.StatusService

	// IsInteractive reports whether stdin is a terminal; the wizard and
	// checklist views refuse to run without one.
	IsInteractive func() bool

	// Persistent flag state, bound by NewRootCmd.
	subjectID string
	clientRef string
}

// NewRootCmd creates the top-level "pathex" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pathex",
		Short: "Maintenance excellence program tracker",
	}

	root.PersistentFlags().StringVar(&app.subjectID, "subject", "default", "Subject (user) the records belong to")
	root.PersistentFlags().StringVar(&app.clientRef, "client", "", "Client engagement (ID, ID prefix, or name)")

	root.AddCommand(
		newClientCmd(app),
		newAssessCmd(app),
		newActionsCmd(app),
		newPhaseCmd(app),
		newStatusCmd(app),
	)

	return root
}

// resolveScope turns the persistent --subject/--client flags into an
// explicit Scope. The client reference may be an exact ID, an ID prefix,
// or a case-insensitive name match.
func (app *App) resolveScope(ctx context.Context) (domain.Scope, error) {
	scope := domain.Scope{SubjectID: app.subjectID}
	if app.clientRef == "" {
		return scope, nil
	}

	clients, err := app.Clients.List(ctx, true)
	if err != nil {
		return scope, err
	}

	for _, c := range clients {
		if c.ID == app.clientRef {
			scope.ClientID = c.ID
			return scope, nil
		}
	}
	for _, c := range clients {
		if strings.EqualFold(c.Name, app.clientRef) {
			scope.ClientID = c.ID
			return scope, nil
		}
	}

	var matches []string
	for _, c := range clients {
		if strings.HasPrefix(c.ID, app.clientRef) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 0:
		return scope, fmt.Errorf("client not found: %q", app.clientRef)
	case 1:
		scope.ClientID = matches[0]
		return scope, nil
	default:
		return scope, fmt.Errorf("client reference %q is ambiguous (%d matches)", app.clientRef, len(matches))
	}
}
