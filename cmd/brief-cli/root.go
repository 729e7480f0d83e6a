package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-brief/pkg/formstore"
	"github.com/goliatone/go-brief/pkg/formstore/boltstore"
	"github.com/goliatone/go-brief/pkg/tui"
)

type rootFlags struct {
	dbPath  string
	key     string
	verbose bool
}

// newDriver is swapped in tests.
var newDriver = func(out io.Writer) tui.PromptDriver {
	return tui.NewSurveyDriver(out)
}

func NewRoot() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "brief-cli",
		Short:         "Fill in and send a PixelPioneer project brief from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.dbPath, "db", defaultDBPath(), "Draft database file")
	root.PersistentFlags().StringVar(&flags.key, "key", formstore.DefaultKey, "Draft key")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log storage events")

	root.AddCommand(
		fillCmd(flags),
		showCmd(flags),
		resetCmd(flags),
	)
	return root
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "brief-drafts.db"
	}
	return filepath.Join(dir, "go-brief", "drafts.db")
}

// openStore opens the bolt file and wraps it in a formstore. The returned
// close function flushes pending writes first.
func openStore(cmd *cobra.Command, flags *rootFlags) (*formstore.Store, func() error, error) {
	if dir := filepath.Dir(flags.dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	db, err := boltstore.Open(flags.dbPath)
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	store := formstore.New(db,
		formstore.WithKey(flags.key),
		formstore.WithLogger(logger),
	)
	closeFn := func() error {
		store.Flush(context.Background())
		return db.Close()
	}
	return store, closeFn, nil
}
