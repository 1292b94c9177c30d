package platform

import (
	"context"
	"fmt"

	"github.com/cardbox-app/cardbox/pkg/core"
	"github.com/cardbox-app/cardbox/pkg/store"
)

// Open wires a store, repository, and session together and loads the
// persisted collection. The path argument is backend-specific (box file
// for "file", database file for "sqlite").
func Open(ctx context.Context, path string, opts ...Option) (*core.Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	st := o.store
	if st == nil {
		var err error
		switch o.backend {
		case BackendFile:
			st, err = store.NewFileStore(path)
		case BackendSQLite:
			st, err = store.NewSQLiteStore(path)
		default:
			err = fmt.Errorf("unknown backend: %q", o.backend)
		}
		if err != nil {
			return nil, err
		}
	}

	repo := core.NewRepository(st, o.logger)
	if err := repo.Load(ctx); err != nil {
		return nil, err
	}

	session := core.NewSession(repo, o.logger)
	if o.defaultColor != "" {
		session.SelectColor(o.defaultColor)
	}
	return session, nil
}
