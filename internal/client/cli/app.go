package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/careercompass/careercompass/internal/client/api"
	"github.com/careercompass/careercompass/internal/client/config"
	"github.com/careercompass/careercompass/internal/client/session"
	"github.com/careercompass/careercompass/internal/filex"
	"github.com/careercompass/careercompass/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the CLI together: config, the session provider, the gate, and
// the interactive reader.
type App struct {
	config   *config.Config
	provider *session.Provider
	gate     *session.Gate
	log      logging.Logger
	reader   *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	// A configured session path may point into a directory that does not
	// exist yet; the sqlite driver will not create it.
	if _, err := filex.EnsureParentDir(cfg.SessionDBPath); err != nil {
		return nil, fmt.Errorf("prepare session directory: %w", err)
	}

	db, err := session.OpenDB(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}

	store := session.NewSQLiteStore(db, log)
	apiClient := api.NewHTTPClient(cfg.UserAPIBaseURL, cfg.CareerAPIBaseURL, cfg.RequestTimeout, cfg.UploadTimeout, log)
	provider := session.NewProvider(apiClient, store, log)

	return &App{
		config:   cfg,
		provider: provider,
		gate:     session.NewGate(provider, cfg.LoginPath),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the session and enters the REPL. The session restore always
// completes before the first prompt, so protected commands never see a
// half-initialized state.
func (a *App) Run(ctx context.Context) {
	a.provider.Start(ctx)

	if user := a.provider.CurrentUser(); user != nil {
		fmt.Printf("Welcome back, %s!\n", user.DisplayName)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.provider.IsLoggedIn()
}

// status renders the prompt suffix, e.g. "(a@b.com)".
func (a *App) status() string {
	if user := a.provider.CurrentUser(); user != nil {
		return fmt.Sprintf("(%s)", user.Email)
	}
	return ""
}
