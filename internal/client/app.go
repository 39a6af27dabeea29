package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/internal/tui"
)

type App struct {
	services *service.ClientServices
	gate     *Gate
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.Session == nil {
		return nil, errors.New("client app: session service is required")
	}
	if ui == nil {
		return nil, errors.New("client app: ui is required")
	}

	return &App{
		services: services,
		gate:     NewGate(services.Session),
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run restores the session, then alternates between the login flow and the
// signed-in screens. It returns nil when the user quits.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.Session.Bootstrap(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	for {
		route := a.gate.Route()
		a.logger.Debug().Stringer("route", route).Msg("navigation gate")

		switch route {
		case RouteLogin:
			err := a.ui.LoginFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
			a.logger.Info().Int64("user_id", a.services.Session.Session().UserID).Msg("signed in")

		case RouteMain:
			logout, err := a.ui.MainLoop(ctx)
			if err != nil {
				return fmt.Errorf("main loop: %w", err)
			}
			if !logout {
				return nil
			}
			a.logger.Info().Msg("signed out")
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}
