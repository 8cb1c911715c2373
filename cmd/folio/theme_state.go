package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	apptheme "github.com/alexisbeaulieu97/folio/internal/application/theme"
	domaintheme "github.com/alexisbeaulieu97/folio/internal/domain/theme"
	"github.com/alexisbeaulieu97/folio/internal/infrastructure/dom"
	"github.com/alexisbeaulieu97/folio/internal/tui"
)

type snapshotJSON struct {
	ThemeID           string `json:"themeId"`
	DisplayName       string `json:"displayName"`
	Category          string `json:"category"`
	Preference        string `json:"preference"`
	SystemPrefersDark bool   `json:"systemPrefersDark"`
}

func toSnapshotJSON(s apptheme.Snapshot) snapshotJSON {
	return snapshotJSON{
		ThemeID:           s.Current.ID,
		DisplayName:       s.Current.DisplayName,
		Category:          string(s.Current.Category),
		Preference:        string(s.Preference),
		SystemPrefersDark: s.SystemPrefersDark,
	}
}

func describeSnapshot(s apptheme.Snapshot) string {
	return fmt.Sprintf("%s (%s) · preference %s · system %s",
		s.Current.ID, s.Current.Category, s.Preference, schemeLabel(s.SystemPrefersDark))
}

func newThemeCurrentCmd(app *AppContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the active theme and the stored preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "command.theme.current")
			store, err := app.OpenStore(ctx, nil)
			if err != nil {
				return err
			}
			snap := store.Snapshot()
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), toSnapshotJSON(snap))
			}
			fmt.Fprintln(cmd.OutOrStdout(), describeSnapshot(snap))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newThemeSetCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <theme-id|light|dark|auto>",
		Short: "Select a theme, or a mode resolved through the catalog defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.set")
			store, err := app.OpenStore(ctx, nil)
			if err != nil {
				return err
			}

			value := strings.TrimSpace(args[0])
			if mode := domaintheme.Mode(value); mode.Valid() {
				err = store.SetThemeMode(mode)
			} else {
				err = store.SetTheme(value)
			}
			if err != nil {
				logger.Error(ctx, "set theme failed", "value", value, "error", err)
				return newCommandError("set theme", fmt.Sprintf("selecting %q", value), err,
					"Use a theme id from 'folio theme list', or light, dark or auto.")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Theme set: %s\n", describeSnapshot(store.Snapshot()))
			return nil
		},
	}

	return cmd
}

func newThemeToggleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between the light and dark default themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "command.theme.toggle")
			store, err := app.OpenStore(ctx, nil)
			if err != nil {
				return err
			}
			store.ToggleMode()
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set: %s\n", describeSnapshot(store.Snapshot()))
			return nil
		},
	}
}

func newThemeWatchCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print theme changes made by other processes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.watch")
			store, err := app.OpenStore(ctx, nil)
			if err != nil {
				return err
			}
			logger.Info(ctx, "watching theme preference", "path", app.Config.Storage.Path)
			return watchStore(ctx, cmd.OutOrStdout(), store)
		},
	}
}

// watchStore prints the current state, then one line per change, until ctx
// is done.
func watchStore(ctx context.Context, out io.Writer, store *apptheme.Store) error {
	changes := make(chan apptheme.Snapshot, 16)
	unsubscribe := store.Subscribe(func(s apptheme.Snapshot) {
		select {
		case changes <- s:
		default:
		}
	})
	defer unsubscribe()

	fmt.Fprintln(out, describeSnapshot(store.Snapshot()))
	for {
		select {
		case <-ctx.Done():
			return nil
		case s := <-changes:
			fmt.Fprintln(out, describeSnapshot(s))
		}
	}
}

func newThemePickCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a theme interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.pick")
			if !isTerminal(os.Stdin) || !isTerminal(cmd.OutOrStdout()) {
				return newCommandError("start picker", "checking the terminal", fmt.Errorf("not an interactive terminal"),
					"Use 'folio theme set <id>' in scripts.")
			}

			store, err := app.OpenStore(ctx, nil)
			if err != nil {
				return err
			}

			program := tea.NewProgram(tui.NewModel(store), tea.WithContext(ctx), tea.WithAltScreen())
			defer tui.Forward(store, program)()

			if _, err := program.Run(); err != nil {
				logger.Error(ctx, "picker failed", "error", err)
				return fmt.Errorf("run picker: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", describeSnapshot(store.Snapshot()))
			return nil
		},
	}
}

type themeApplyOptions struct {
	themeID string
	out     string
}

func newThemeApplyCmd(app *AppContext) *cobra.Command {
	opts := &themeApplyOptions{}

	cmd := &cobra.Command{
		Use:   "apply <html-file>",
		Short: "Stamp the active theme onto an HTML document",
		Long: `Set data-theme and the color-scheme meta tag on an HTML document.
Without --theme the stored preference is resolved against the system scheme.
--theme applies a theme without changing the stored preference.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.theme.apply")
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			if opts.themeID != "" {
				def, err := lookupTheme(app, cmd, opts.themeID)
				if err != nil {
					return err
				}
				apptheme.NewApplier(doc).Apply(def)
			} else if _, err := app.OpenStore(ctx, doc); err != nil {
				return err
			}

			logger.Debug(ctx, "theme stamped", "path", args[0], "out", opts.out)
			return writeDocument(cmd, doc, opts.out)
		},
	}

	cmd.Flags().StringVar(&opts.themeID, "theme", "", "Apply this theme instead of the stored preference")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the document here instead of stdout")

	return cmd
}

func readDocument(path string) (*dom.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, newCommandError("read document", fmt.Sprintf("opening %q", path), err,
			"Check that the HTML file exists.")
	}
	defer file.Close()

	doc, err := dom.Parse(file)
	if err != nil {
		return nil, newCommandError("read document", fmt.Sprintf("parsing %q", path), err, "")
	}
	return doc, nil
}

func writeDocument(cmd *cobra.Command, doc *dom.Document, path string) error {
	if path == "" {
		return doc.Render(cmd.OutOrStdout())
	}
	file, err := os.Create(path)
	if err != nil {
		return newCommandError("write document", fmt.Sprintf("creating %q", path), err, "")
	}
	if err := doc.Render(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
