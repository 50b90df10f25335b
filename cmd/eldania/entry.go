package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fourforfour/eldanialight/internal/world"
)

func (a *app) locationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "location <name>",
		Short: "Describe a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			name := args[0]

			locType, err := engine.LocationType(name)
			if err != nil {
				return err
			}
			desc, err := engine.LocationDescription(name)
			if err != nil {
				return err
			}
			neighbors, err := engine.LocationNeighbors(name)
			if err != nil {
				return err
			}
			commands, err := engine.LocationCommands(name)
			if err != nil {
				return err
			}
			npc, err := engine.LocationNPC(name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", name, locType)
			fmt.Fprintf(out, "  %s\n", desc)
			fmt.Fprintf(out, "  neighbors: %s\n", strings.Join(neighbors, ", "))
			fmt.Fprintf(out, "  commands:  %s\n", strings.Join(commands, ", "))
			if npcs := world.NPCNames(npc); len(npcs) > 0 {
				fmt.Fprintf(out, "  npc:       %s\n", strings.Join(npcs, ", "))
			}
			return nil
		},
	}
}

func (a *app) playerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <class>",
		Short: "Build a player from a class entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			player, err := engine.NewPlayer(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, player)
			if player.Description != "" {
				fmt.Fprintf(out, "  %s\n", player.Description)
			}
			if len(player.Inventory) > 0 {
				fmt.Fprintf(out, "  inventory: %s\n", strings.Join(player.Inventory, ", "))
			}
			return nil
		},
	}
}

func (a *app) enemyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enemy <name>",
		Short: "Build an enemy from an enemy entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			enemy, err := engine.NewEnemy(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, enemy)
			fmt.Fprintf(out, "  id: %s\n", enemy.ID)
			if enemy.Description != "" {
				fmt.Fprintf(out, "  %s\n", enemy.Description)
			}
			if len(enemy.Rewards) > 0 {
				fmt.Fprintf(out, "  drops: %s\n", strings.Join(enemy.Rewards, ", "))
			}
			return nil
		},
	}
}
