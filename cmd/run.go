package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/capitolquiz/internal/app"
	"github.com/abhisek/capitolquiz/internal/config"
	"github.com/abhisek/capitolquiz/internal/logger"
	"github.com/abhisek/capitolquiz/internal/questiongen"
	"github.com/abhisek/capitolquiz/internal/roster"
	"github.com/abhisek/capitolquiz/internal/store"
)

// runtime bundles what every command needs after startup.
type runtime struct {
	cfg *config.Config
	log *zap.Logger
}

// setup loads configuration for cmd and builds the logger.
func setup(cmd *cobra.Command) (*runtime, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(file, cmd.Flags())
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return &runtime{cfg: cfg, log: log}, nil
}

func (rt *runtime) close() {
	_ = rt.log.Sync()
}

// openStore opens the roster database, honoring database.path before the
// default XDG location.
func (rt *runtime) openStore() (*store.Store, error) {
	path := rt.cfg.Database.Path
	if path != "" {
		if err := store.EnsureDir(path); err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	} else {
		var err error
		if path, err = store.DefaultDBPath(); err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	rt.log.Debug("store opened", zap.String("path", path))
	return st, nil
}

// loadRoster resolves the roster: an explicit file wins, then the imported
// roster in the store, then the embedded default. It returns a label for
// where the roster came from.
func (rt *runtime) loadRoster(ctx context.Context) (*roster.Roster, string, error) {
	if path := rt.cfg.Roster.Path; path != "" {
		r, err := roster.LoadFile(path, rt.log)
		if err != nil {
			return nil, "", err
		}
		return r, path, nil
	}

	st, err := rt.openStore()
	if err != nil {
		return nil, "", err
	}
	defer st.Close()

	repo := st.RosterRepo()
	r, err := repo.Load(ctx)
	switch {
	case err == nil:
		source := "database"
		if imp, _ := repo.LastImport(ctx); imp != nil {
			source = imp.Source
		}
		return r, source, nil
	case errors.Is(err, roster.ErrEmptyRoster):
		r, err := roster.Default(rt.log)
		if err != nil {
			return nil, "", err
		}
		return r, "embedded", nil
	default:
		return nil, "", fmt.Errorf("load stored roster: %w", err)
	}
}

// newGenerator builds a generator from the configured seed. Seed 0 draws a
// random one, which is logged so a run can be replayed.
func (rt *runtime) newGenerator() *questiongen.Generator {
	seed := rt.cfg.Quiz.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rt.log.Info("generator seeded", zap.Uint64("seed", seed))
	return questiongen.NewSeeded(seed, rt.cfg.GeneratorConfig(), rt.log.Named("questiongen"))
}

// runApp loads config and the roster, then launches the TUI. direct skips
// the splash and menu and starts a quiz at the configured difficulty.
func runApp(cmd *cobra.Command, direct bool) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	r, source, err := rt.loadRoster(cmd.Context())
	if err != nil {
		return err
	}
	rt.log.Info("roster loaded", zap.String("source", source), zap.Int("senators", r.Len()))

	opts := app.Options{
		Roster:              r,
		RosterSource:        source,
		Generator:           rt.newGenerator(),
		Questions:           rt.cfg.Quiz.Questions,
		AttemptsPerQuestion: rt.cfg.Quiz.AttemptsPerQuestion,
		Log:                 rt.log,
	}
	if direct {
		opts.Difficulty = rt.cfg.Difficulty()
	}
	return app.Run(opts)
}
