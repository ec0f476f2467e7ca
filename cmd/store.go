package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/advisor-cli/internal/advisor"
	"github.com/sells-group/advisor-cli/internal/catalog"
	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/labels"
	"github.com/sells-group/advisor-cli/internal/scorer"
	"github.com/sells-group/advisor-cli/internal/store"
)

// initStore opens and migrates the configured store. It returns nil when the
// driver is "none".
func initStore(ctx context.Context) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch cfg.Store.Driver {
	case config.DriverNone:
		return nil, nil
	case config.DriverSQLite:
		st, err = store.NewSQLite(cfg.Store.DatabaseURL)
	case config.DriverPostgres:
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL, &store.PoolConfig{
			MaxConns: cfg.Store.MaxConns,
			MinConns: cfg.Store.MinConns,
		})
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}

// newAdvisor builds the advisor service. With persist false no store is
// opened. The returned func releases the store.
func newAdvisor(ctx context.Context, persist bool) (*advisor.Service, func(), error) {
	if err := scorer.ValidateConfig(cfg.Matcher); err != nil {
		return nil, nil, err
	}

	cat := catalog.New(labels.New())
	if err := cat.Validate(); err != nil {
		return nil, nil, eris.Wrap(err, "portfolio catalog")
	}

	var st store.Store
	if persist {
		s, err := initStore(ctx)
		if err != nil {
			return nil, nil, err
		}
		st = s
	}

	closeFn := func() {}
	if st != nil {
		closeFn = func() { st.Close() } //nolint:errcheck
	}
	return advisor.New(cfg, cat, st), closeFn, nil
}

// requireStore opens an advisor backed by a store or fails when persistence
// is disabled.
func requireStore(ctx context.Context) (*advisor.Service, func(), error) {
	if cfg.Store.Driver == config.DriverNone {
		return nil, nil, eris.New("assessment history is disabled (store.driver is \"none\")")
	}
	return newAdvisor(ctx, true)
}
