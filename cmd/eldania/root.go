package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fourforfour/eldanialight/internal/config"
	"github.com/fourforfour/eldanialight/internal/gamedata"
)

var version = "dev"

// app carries what every command needs to open the content document.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	dataPath string
}

func newRootCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	a := &app{cfg: cfg, logger: logger}

	root := &cobra.Command{
		Use:          "eldania",
		Short:        "Inspect and explore Eldania Light game content",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&a.dataPath, "data", "", "content document to load (default: $ELDANIA_DATA or the bundled content)")

	root.AddCommand(a.categoriesCmd())
	root.AddCommand(a.listCmd())
	root.AddCommand(a.showCmd())
	root.AddCommand(a.locationCmd())
	root.AddCommand(a.playerCmd())
	root.AddCommand(a.enemyCmd())
	root.AddCommand(a.routeCmd())
	root.AddCommand(a.validateCmd())
	root.AddCommand(a.exploreCmd())
	root.AddCommand(versionCmd())
	return root
}

// engine loads the content document named by --data, $ELDANIA_DATA, or
// the bundled content, in that order.
func (a *app) engine(ctx context.Context, opts ...gamedata.Option) (*gamedata.Engine, error) {
	path := a.dataPath
	if path == "" {
		path = a.cfg.DataPath
	}

	var (
		store *gamedata.Store
		err   error
	)
	if path == "" {
		store, err = gamedata.LoadDefault()
	} else {
		store, err = gamedata.LoadFile(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	opts = append([]gamedata.Option{gamedata.WithLogger(a.logger)}, opts...)
	return gamedata.NewEngine(store, opts...), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print eldania version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version)
		},
	}
}
