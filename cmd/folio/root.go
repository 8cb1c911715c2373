package main

import (
	"github.com/spf13/cobra"
)

const skipBootstrap = "folio.skip-bootstrap"

type rootFlags struct {
	configFile string
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "folio manages the site's themes, motion presets and content",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipBootstrap] == "true" {
				return nil
			}
			return app.bootstrap(cmd, flags.configFile)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/folio/config.yaml)")
	pf.String("storage", "", "Preference file path")
	pf.String("storage-key", "", "Key the theme preference is stored under")
	pf.String("catalog", "", "Theme catalog file (YAML, TOML or JSON); built-in themes when empty")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text or json")
	pf.String("scheme", "auto", "System colour scheme: auto, light or dark")
	pf.Bool("reduced-motion", false, "Report a reduced-motion preference")
	pf.String("content-dir", "", "Content root holding blog/ and portfolio/")

	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newAnimateCmd(app))
	cmd.AddCommand(newContentCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
