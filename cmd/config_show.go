package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shopcatalog/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the effective configuration and the resolved config file path.

Values come from the config file, SHOPCATALOG_* environment variables and
built-in defaults. The configuration is validated before printing.`,
	Example: `
  # Show active configuration
  shopcatalog config show
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		out := cmd.OutOrStdout()
		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Fprintln(out, "Config file loaded from:", configPath)
		} else {
			fmt.Fprintln(out, "No config file loaded, using defaults.")
		}
		printConfig(out, cfg)
		return nil
	},
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintf(w, "log.level: %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "log.format: %s\n", cfg.Log.Format)
	fmt.Fprintf(w, "http.timeout: %s\n", cfg.HTTP.Timeout)
	fmt.Fprintf(w, "http.user_agent: %s\n", cfg.HTTP.UserAgent)
	fmt.Fprintf(w, "server.port: %d\n", cfg.Server.Port)
	fmt.Fprintf(w, "catalog.language: %s\n", cfg.Catalog.Language)
	fmt.Fprintf(w, "catalog.static_dirs: %s\n", strings.Join(cfg.Catalog.StaticDirs, ", "))
	fmt.Fprintf(w, "verticals: %d\n", len(cfg.Verticals))
	for i, source := range cfg.Verticals {
		fmt.Fprintf(w, "verticals[%d].id: %s\n", i, source.ID)
		fmt.Fprintf(w, "verticals[%d].primary_url: %s\n", i, source.PrimaryURL)
		fmt.Fprintf(w, "verticals[%d].fallback_url: %s\n", i, source.FallbackURL)
		fmt.Fprintf(w, "verticals[%d].static_json: %s\n", i, strings.Join(source.StaticJSON, ", "))
	}
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
