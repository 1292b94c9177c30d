package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cardbox-app/cardbox"
	"github.com/cardbox-app/cardbox/pkg/store"
	"github.com/spf13/cobra"
)

var watchQuery string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the box whenever it changes on disk",
	Long: `Watch prints the projected views and reprints them when another
process rewrites the box file. File backend only. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if effectiveBackend() != cardbox.BackendFile {
			fatal("Cannot watch", store.ErrWatchUnsupported)
		}

		path, err := effectivePath()
		if err != nil {
			fatal("Failed to resolve box location", err)
		}
		st, err := store.NewFileStore(path)
		if err != nil {
			fatal("Failed to open box", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		session, err := cardbox.Open(ctx, path,
			cardbox.WithStore(st),
			cardbox.WithLogger(slog.Default()),
			cardbox.WithDefaultColor(cfg.DefaultColor),
		)
		if err != nil {
			fatal("Failed to open box", err)
		}

		changes, err := store.Watch(ctx, st, slog.Default())
		if err != nil {
			fatal("Failed to watch box", err)
		}

		render := func() {
			pinned, others := session.ProjectedView(watchQuery)
			fmt.Println("----")
			renderViews(os.Stdout, pinned, others)
		}
		render()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				if err := session.Repository().Load(ctx); err != nil {
					slog.Error("failed to reload box", "error", err)
					continue
				}
				render()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchQuery, "query", "q", "", "Search query applied to every render")
}
