package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/product-catalog/internal/catalog"
	"github.com/Veraticus/product-catalog/internal/cli"
	"github.com/Veraticus/product-catalog/internal/filter"
	"github.com/Veraticus/product-catalog/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the product table",
		Long:  `Print every product with its category and owner, filtered by an optional query.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			cat, err := loadCatalog(cmd.Context(), cfg.Fixtures)
			if err != nil {
				return err
			}

			query, _ := cmd.Flags().GetString("query")
			return renderList(cmd.OutOrStdout(), cat, query)
		},
	}

	cmd.Flags().StringP("query", "q", "", "case-insensitive product name filter")

	return cmd
}

// renderList writes the products matching query as a table.
func renderList(out io.Writer, cat *catalog.Catalog, query string) error {
	engine := filter.NewEngine(cat.Products())
	engine.SetQuery(query)

	view := viewmodel.NewCatalogView(engine.Snapshot(), cat.Users(), cat.Categories(), len(cat.Products()))

	if _, err := fmt.Fprintln(out, cli.FormatTitle("Product Categories")); err != nil {
		return err
	}

	if view.ShowNoMatching() {
		_, err := fmt.Fprintln(out, cli.InfoStyle.Render(viewmodel.NoMatchingMessage))
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	headers := make([]string, 0, len(view.Columns))
	rules := make([]string, 0, len(view.Columns))
	for _, col := range view.Columns {
		headers = append(headers, cli.TableHeaderStyle.Render(col.Title))
		rules = append(rules, strings.Repeat("-", max(4, len(col.Title))))
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	fmt.Fprintln(w, strings.Join(rules, "\t"))

	for _, row := range view.Rows {
		user := ""
		if row.HasUserCell() {
			user = cli.StyleUser(row.UserName, row.UserColor)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", strconv.Itoa(row.ID), row.Name, row.CategoryLabel, user)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d of %d products", view.VisibleCount(), view.TotalCount)
	if view.ShowClearButton() {
		summary += fmt.Sprintf(" matching %q", view.Query)
	}
	_, err := fmt.Fprintln(out, cli.SubtleStyle.Render(summary))
	return err
}
