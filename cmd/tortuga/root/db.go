package root

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/config"
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/engine"
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/storage"
)

// openService wires config, logging, storage, and the engine, seeds the
// singletons, and applies the daily reset. The returned date is "today" as
// the rest of the command should see it.
func openService(ctx context.Context) (*engine.Service, string, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", nil, err
	}

	log := logrus.New()
	log.SetLevel(cfg.Level())

	path := cfg.DBPath
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, "", nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, "", nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	today := cfg.Today
	if today == "" {
		today = engine.TodayISO(time.Now())
	} else if _, err := engine.ParseISODate(today); err != nil {
		cleanup()
		return nil, "", nil, err
	}

	svc := engine.NewService(db).WithLogger(log)
	if err := svc.EnsureSeed(ctx); err != nil {
		cleanup()
		return nil, "", nil, err
	}
	if err := svc.EnsureDailyReset(ctx, today); err != nil {
		cleanup()
		return nil, "", nil, err
	}
	return svc, today, cleanup, nil
}
