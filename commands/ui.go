package commands

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/termsocial/infra/config"
	"github.com/CrestNiraj12/termsocial/infra/editor"
	"github.com/CrestNiraj12/termsocial/infra/logging"
	"github.com/CrestNiraj12/termsocial/tui"
	"github.com/CrestNiraj12/termsocial/tui/common"
)

func runUI(ctx context.Context) error {
	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logs, err := logging.Setup(cfg.LogPath)
	if err != nil {
		return err
	}
	defer logs.Close()

	// 2. Build services.
	svc := newServices(cfg)
	slog.Info("starting", "locale", cfg.Locale().String(), "seed", cfg.Seed, "skip_login", cfg.SkipLogin)

	// 3. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Posts:        svc.posts,
		Auth:         svc.accounts,
		Profiles:     svc.accounts,
		Editor:       editor.NewEnvEditor(),
		Scheduler:    common.TickScheduler{},
		Clock:        svc.clock,
		IDs:          svc.ids,
		PublishDelay: cfg.PublishDelay,
		RefreshDelay: cfg.RefreshDelay,
		AuthDelay:    cfg.AuthDelay,
		Locale:       cfg.Locale(),
		SkipLogin:    cfg.SkipLogin,
	})

	// 4. Run.
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if ctx != nil {
		opts = append(opts, tea.WithContext(ctx))
	}
	if _, err := tea.NewProgram(rootModel, opts...).Run(); err != nil {
		return fmt.Errorf("termsocial: %w", err)
	}
	slog.Info("bye")
	return nil
}
