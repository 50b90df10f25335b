package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fourforfour/eldanialight/internal/world"
)

func (a *app) routeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Print the shortest path between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			m, err := world.Build(cmd.Context(), engine)
			if err != nil {
				return err
			}
			path, err := m.Route(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(path, " -> "))
			return nil
		},
	}
}
