package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/components"
	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
)

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Browse, select and export site themes",
	}

	cmd.AddCommand(newThemeListCmd(app))
	cmd.AddCommand(newThemeShowCmd(app))
	cmd.AddCommand(newThemeSearchCmd(app))
	cmd.AddCommand(newThemeCSSCmd(app))
	cmd.AddCommand(newThemeExportCmd(app))
	cmd.AddCommand(newThemeCurrentCmd(app))
	cmd.AddCommand(newThemeSetCmd(app))
	cmd.AddCommand(newThemeToggleCmd(app))
	cmd.AddCommand(newThemeWatchCmd(app))
	cmd.AddCommand(newThemePickCmd(app))
	cmd.AddCommand(newThemeApplyCmd(app))
	cmd.AddCommand(newThemeStatsCmd(app))
	cmd.AddCommand(newThemeAuditCmd(app))
	cmd.AddCommand(newThemeRecommendCmd(app))

	return cmd
}

type themeListOptions struct {
	category   string
	jsonOutput bool
}

func newThemeListCmd(app *AppContext) *cobra.Command {
	opts := &themeListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the themes in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.list")
			c, err := app.Catalog(ctx)
			if err != nil {
				return err
			}

			themes := c.All()
			if opts.category != "" {
				category := domaintheme.Category(opts.category)
				if !category.Valid() {
					return newCommandError("list themes", fmt.Sprintf("filtering by %q", opts.category),
						fmt.Errorf("unknown category %q", opts.category), "Use --category light or --category dark.")
				}
				themes = c.FilterByCategory(category)
			}
			logger.Debug(ctx, "listing themes", "count", len(themes), "category", opts.category)

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), themes)
			}
			return renderThemeTable(cmd.OutOrStdout(), themes, c.Defaults())
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "Only list light or dark themes")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderThemeTable(w io.Writer, themes []domaintheme.Definition, defaults domaintheme.Defaults) error {
	if len(themes) == 0 {
		fmt.Fprintln(w, "No themes found.")
		return nil
	}

	swatches := isTerminal(w)
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := "ID\tNAME\tCATEGORY\tWCAG\tCONTRAST"
	if swatches {
		header += "\tCOLOURS"
	}
	fmt.Fprintln(writer, header)

	for _, def := range themes {
		id := def.ID
		if defaults.For(def.Category) == def.ID {
			id += " *"
		}
		line := fmt.Sprintf("%s\t%s\t%s\t%s\t%.2f",
			id, def.DisplayName, def.Category, def.Accessibility.WCAGLevel, def.Accessibility.PrimaryTextContrast)
		if swatches {
			line += "\t" + components.Swatch(def)
		}
		fmt.Fprintln(writer, line)
	}

	if err := writer.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w, "\n* default for its category")
	return nil
}

func newThemeShowCmd(app *AppContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <theme-id>",
		Short: "Show a theme's details and colour roles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := lookupTheme(app, cmd, args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), def)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, components.ThemeCard(def).View())
			fmt.Fprintln(out)
			fmt.Fprintln(out, components.SwatchTable(def))
			if notes := def.Accessibility.Notes; notes != "" {
				fmt.Fprintf(out, "\nNotes: %s\n", notes)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

// lookupTheme resolves id against the configured catalog.
func lookupTheme(app *AppContext, cmd *cobra.Command, id string) (domaintheme.Definition, error) {
	ctx, logger := app.CommandContext(cmd, "command.theme")
	c, err := app.Catalog(ctx)
	if err != nil {
		return domaintheme.Definition{}, err
	}
	def, ok := c.FindByID(id)
	if !ok {
		logger.Warn(ctx, "theme not found", "theme_id", id)
		return domaintheme.Definition{}, newCommandError("find theme", fmt.Sprintf("looking up %q", id),
			domaintheme.NewNotFoundError(id), "Run 'folio theme list' to see the available themes.")
	}
	return def, nil
}

type themeSearchOptions struct {
	useCase    string
	psychology string
	jsonOutput bool
}

func newThemeSearchCmd(app *AppContext) *cobra.Command {
	opts := &themeSearchOptions{}

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search themes by name, description, psychology or use case",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.search")
			c, err := app.Catalog(ctx)
			if err != nil {
				return err
			}

			if len(args) == 0 && opts.useCase == "" && opts.psychology == "" {
				return newCommandError("search themes", "reading the query", fmt.Errorf("no query given"),
					"Pass a query, --use-case or --psychology.")
			}

			results := c.All()
			if len(args) == 1 {
				results = c.Search(args[0])
			}
			if opts.useCase != "" {
				results = intersect(results, c.ByUseCase(opts.useCase))
			}
			if opts.psychology != "" {
				results = intersect(results, c.ByPsychology(opts.psychology))
			}
			logger.Debug(ctx, "search finished", "query", strings.Join(args, " "), "matches", len(results))

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			return renderThemeTable(cmd.OutOrStdout(), results, c.Defaults())
		},
	}

	cmd.Flags().StringVar(&opts.useCase, "use-case", "", "Only themes suited to this use case")
	cmd.Flags().StringVar(&opts.psychology, "psychology", "", "Only themes with this psychology tag")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

// intersect keeps the entries of a that also appear in b, in a's order.
func intersect(a, b []domaintheme.Definition) []domaintheme.Definition {
	keep := make(map[string]struct{}, len(b))
	for _, def := range b {
		keep[def.ID] = struct{}{}
	}
	out := make([]domaintheme.Definition, 0, len(a))
	for _, def := range a {
		if _, ok := keep[def.ID]; ok {
			out = append(out, def)
		}
	}
	return out
}

func newThemeCSSCmd(app *AppContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "css [theme-id]",
		Short: "Print CSS custom properties for a theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "command.theme.css")
			c, err := app.Catalog(ctx)
			if err != nil {
				return err
			}

			var themes []domaintheme.Definition
			switch {
			case all:
				themes = c.All()
			case len(args) == 1:
				def, err := lookupTheme(app, cmd, args[0])
				if err != nil {
					return err
				}
				themes = []domaintheme.Definition{def}
			default:
				return newCommandError("render css", "choosing themes", fmt.Errorf("no theme given"),
					"Pass a theme id or --all.")
			}

			out := cmd.OutOrStdout()
			for i, def := range themes {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprint(out, domaintheme.CSSBlock(def))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Render every theme in the catalog")

	return cmd
}

func newThemeExportCmd(app *AppContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "export [theme-id]",
		Short: "Export a theme definition as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "command.theme.export")
			if all {
				c, err := app.Catalog(ctx)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), struct {
					Defaults domaintheme.Defaults    `json:"defaults"`
					Themes   []domaintheme.Definition `json:"themes"`
				}{c.Defaults(), c.All()})
			}
			if len(args) == 0 {
				return newCommandError("export theme", "choosing a theme", fmt.Errorf("no theme given"),
					"Pass a theme id or --all.")
			}

			def, err := lookupTheme(app, cmd, args[0])
			if err != nil {
				return err
			}
			data, err := domaintheme.ExportJSON(def)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), data)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Export the whole catalog")

	return cmd
}
