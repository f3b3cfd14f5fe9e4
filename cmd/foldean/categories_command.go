package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"foldean/internal/category"
)

type categoryView struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

var categoryColumns = []column{
	{title: "#", numeric: true},
	{title: "Category"},
	{title: "Extensions"},
}

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories and the extensions that map to them",
		Long: "Categories are checked in the order listed; the first one that claims an\n" +
			"extension wins. Files matching none go to " + category.Fallback + ".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := category.Default()
			views := make([]categoryView, 0, len(table.Names()))
			for _, c := range table.Categories() {
				views = append(views, categoryView{Name: c.Name, Extensions: c.Extensions})
			}
			views = append(views, categoryView{Name: category.Fallback, Extensions: []string{}})

			if ctx.flags.json {
				return writeJSON(cmd, views)
			}

			rows := make([][]string, 0, len(views))
			for i, v := range views {
				exts := strings.Join(v.Extensions, " ")
				if v.Name == category.Fallback {
					exts = "(anything else)"
				}
				rows = append(rows, []string{fmt.Sprintf("%d", i+1), v.Name, exts})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(categoryColumns, rows))
			return nil
		},
	}
}
