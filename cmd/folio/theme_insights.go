package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/components"
	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
)

// contrastTolerance is how far a declared ratio may drift from the measured
// one before audit flags it.
const contrastTolerance = 0.5

// WCAG 2.x thresholds for body text.
const (
	minContrastAA  = 4.5
	minContrastAAA = 7.0
)

func newThemeStatsCmd(app *AppContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "command.theme.stats")
			c, err := app.Catalog(ctx)
			if err != nil {
				return err
			}
			stats := c.Stats()
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), stats)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Themes:           %d (%d light, %d dark)\n", stats.Total, stats.Light, stats.Dark)
			fmt.Fprintf(out, "Average contrast: %.2f:1\n", stats.AverageContrast)
			fmt.Fprintf(out, "WCAG AAA:         %d\n", stats.WCAGLevels[domaintheme.WCAGLevelAAA])
			fmt.Fprintf(out, "WCAG AA:          %d\n", stats.WCAGLevels[domaintheme.WCAGLevelAA])
			fmt.Fprintf(out, "Psychology tags:  %d\n", stats.PsychologyTags)
			fmt.Fprintf(out, "Use cases:        %d\n", stats.UseCases)

			pairs := c.Pairs(domaintheme.DefaultPairings)
			if len(pairs) > 0 {
				fmt.Fprintln(out, "\nPairings:")
				for _, p := range pairs {
					dark := "-"
					if p.Dark != nil {
						dark = p.Dark.ID
					}
					fmt.Fprintf(out, "  %-13s %s / %s\n", p.Group, p.Light.ID, dark)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type auditResult struct {
	ThemeID  string   `json:"themeId"`
	Declared float64  `json:"declared"`
	Measured float64  `json:"measured"`
	Level    string   `json:"level"`
	Problems []string `json:"problems,omitempty"`
}

// auditTheme compares the declared accessibility metadata of def with the
// contrast measured from its colours.
func auditTheme(def domaintheme.Definition) auditResult {
	result := auditResult{
		ThemeID:  def.ID,
		Declared: def.Accessibility.PrimaryTextContrast,
		Level:    string(def.Accessibility.WCAGLevel),
	}

	measured, err := domaintheme.MeasuredContrast(def)
	if err != nil {
		result.Problems = append(result.Problems, fmt.Sprintf("cannot measure contrast: %v", err))
		return result
	}
	result.Measured = measured

	if math.Abs(measured-result.Declared) > contrastTolerance {
		result.Problems = append(result.Problems,
			fmt.Sprintf("declared contrast %.2f differs from measured %.2f", result.Declared, measured))
	}
	switch def.Accessibility.WCAGLevel {
	case domaintheme.WCAGLevelAAA:
		if measured < minContrastAAA {
			result.Problems = append(result.Problems, fmt.Sprintf("AAA needs %.1f:1", minContrastAAA))
		}
	case domaintheme.WCAGLevelAA:
		if measured < minContrastAA {
			result.Problems = append(result.Problems, fmt.Sprintf("AA needs %.1f:1", minContrastAA))
		}
	}
	return result
}

func newThemeAuditCmd(app *AppContext) *cobra.Command {
	var (
		jsonOutput bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check declared contrast metadata against the theme colours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.audit")
			c, err := app.Catalog(ctx)
			if err != nil {
				return err
			}

			results := make([]auditResult, 0, c.Len())
			failing := 0
			for _, def := range c.SortedByContrast(false) {
				r := auditTheme(def)
				if len(r.Problems) > 0 {
					failing++
					logger.Warn(ctx, "theme audit finding", "theme_id", r.ThemeID, "problems", len(r.Problems))
				}
				results = append(results, r)
			}

			if jsonOutput {
				if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
					return err
				}
			} else if err := renderAudit(cmd, results, failing); err != nil {
				return err
			}

			if strict && failing > 0 {
				return newCommandError("audit themes", "checking contrast", fmt.Errorf("%d theme(s) with findings", failing),
					"Update primaryTextContrast and wcagLevel to match the colours.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any theme has findings")

	return cmd
}

func renderAudit(cmd *cobra.Command, results []auditResult, failing int) error {
	out := cmd.OutOrStdout()
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tLEVEL\tDECLARED\tMEASURED\tSTATUS")
	for _, r := range results {
		status := "ok"
		if len(r.Problems) > 0 {
			status = r.Problems[0]
		}
		fmt.Fprintf(writer, "%s\t%s\t%.2f\t%.2f\t%s\n", r.ThemeID, r.Level, r.Declared, r.Measured, status)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	if failing == 0 {
		fmt.Fprintln(out, "\n"+components.SuccessAlert(fmt.Sprintf("All %d themes match their metadata.", len(results))).View())
	} else {
		fmt.Fprintln(out, "\n"+components.WarningAlert(fmt.Sprintf("%d of %d themes have findings.", failing, len(results))).View())
	}
	return nil
}

func newThemeRecommendCmd(app *AppContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:       "recommend <business-type>",
		Short:     "Suggest themes for a kind of business",
		Args:      cobra.ExactArgs(1),
		ValidArgs: domaintheme.BusinessTypes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "command.theme.recommend")
			c, err := app.Catalog(ctx)
			if err != nil {
				return err
			}

			recommended := c.Recommend(args[0])
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), recommended)
			}
			if len(recommended) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No recommendations for %q. Known business types: %v\n",
					args[0], domaintheme.BusinessTypes())
				return nil
			}

			out := cmd.OutOrStdout()
			for i, def := range recommended {
				fmt.Fprintf(out, "%d. %s (%s)\n   %s\n", i+1, def.DisplayName, def.ID, def.Description)
				if alt, ok := c.Contrasting(def); ok {
					fmt.Fprintf(out, "   %s companion: %s\n", alt.Category, alt.ID)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
