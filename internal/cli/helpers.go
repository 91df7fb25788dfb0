package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/BuomYian/alx-backend-graphql-crm/internal/cache"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/config"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/mutate"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/query"
	"github.com/BuomYian/alx-backend-graphql-crm/internal/store"
)

// deps bundles everything a command needs to run: config, the open
// store, and the layers built on top of it.
type deps struct {
	cfg     config.Config
	store   *store.Store
	reader  *query.Reader
	mutator *mutate.Mutator
	cache   *cache.ProductCache // nil when no cache is configured
}

// close releases the store and cache connections.
func (d *deps) close() {
	if d.cache != nil {
		if err := d.cache.Close(); err != nil {
			slog.Warn("closing cache", "error", err)
		}
	}
	if d.store != nil {
		if err := d.store.Close(); err != nil {
			slog.Warn("closing store", "error", err)
		}
	}
}

// openDeps loads configuration, opens the database, and wires the
// reader and mutator. The Redis cache is optional: a configured but
// unreachable cache is logged and skipped, never fatal.
func openDeps(opts *RootOptions) (*deps, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading config", err)
	}
	if opts.Database != "" {
		cfg.Database = opts.Database
	}

	st, err := store.Open(cfg.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "opening database", err)
	}

	d := &deps{
		cfg:     cfg,
		store:   st,
		mutator: mutate.New(st),
	}

	if cfg.Redis.Addr != "" {
		c, err := cache.New(cfg.Redis.Addr, cfg.Redis.CacheTTL)
		if err != nil {
			slog.Warn("product cache unavailable, continuing without", "addr", cfg.Redis.Addr, "error", err)
		} else {
			d.cache = c
		}
	}

	if d.cache != nil {
		d.reader = query.NewReaderWithCache(st, d.cache)
	} else {
		d.reader = query.NewReader(st)
	}

	return d, nil
}

// newFormatter builds the output formatter for a command, honoring the
// global format and verbose flags.
func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// writeMutationError renders a rejected mutation and returns the exit
// error carrying code 1. Non-mutation errors get the generic STORE code.
func writeMutationError(f *OutputFormatter, err error) error {
	var me *mutate.MutationError
	if errors.As(err, &me) {
		var details interface{}
		if len(me.Fields) > 0 {
			details = me.Fields
		}
		if ferr := f.Error(string(me.Code), me.Message, details); ferr != nil {
			return WrapExitError(ExitCommandError, "writing output", ferr)
		}
		return WrapExitError(ExitFailure, me.Message, err)
	}

	if ferr := f.Error(string(mutate.ErrCodeStore), err.Error(), nil); ferr != nil {
		return WrapExitError(ExitCommandError, "writing output", ferr)
	}
	return WrapExitError(ExitFailure, "operation failed", err)
}
