package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fourforfour/eldanialight/internal/gamedata"
)

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the content categories and where they live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range gamedata.Categories() {
				pattern, _ := c.Pattern()
				fmt.Fprintf(out, "%-14s %-12s %s\n", c, pattern, strings.Join(c.Path(), " > "))
			}
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <category>",
		Short: "List the names in a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCategory(args[0])
			if err != nil {
				return err
			}
			engine, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}

			names := engine.List(c)
			if len(names) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s found.\n", strings.ToLower(string(c)))
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <category> <name>",
		Short: "Print one entry as YAML",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCategory(args[0])
			if err != nil {
				return err
			}
			engine, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}

			node, err := engine.Fetch(c, args[1])
			if err != nil {
				return err
			}
			out, err := node.Encode()
			if err != nil {
				return fmt.Errorf("render %s: %w", args[1], err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func parseCategory(name string) (gamedata.Category, error) {
	c, ok := gamedata.LookupCategory(name)
	if ok {
		return c, nil
	}
	known := make([]string, 0)
	for _, c := range gamedata.Categories() {
		known = append(known, string(c))
	}
	return "", fmt.Errorf("unknown category %q (known: %s)", name, strings.Join(known, ", "))
}
