package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fourforfour/eldanialight/internal/game"
	"github.com/fourforfour/eldanialight/internal/gamedata"
	"github.com/fourforfour/eldanialight/internal/logger"
	"github.com/fourforfour/eldanialight/internal/world"
)

func (a *app) exploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [start]",
		Short: "Walk the locations in a terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Anything written to stderr would tear the full-screen view.
			quiet := logger.Discard()
			prev := slog.Default()
			slog.SetDefault(quiet)
			defer slog.SetDefault(prev)

			engine, err := a.engine(cmd.Context(), gamedata.WithLogger(quiet))
			if err != nil {
				return err
			}
			m, err := world.Build(cmd.Context(), engine)
			if err != nil {
				return err
			}

			start := ""
			if len(args) == 1 {
				start = args[0]
			}
			g, err := game.New(engine, m, start)
			if err != nil {
				return err
			}
			return g.Run(cmd.Context())
		},
	}
}
