package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage shopcatalog configuration file values.",
	Long: `Create and display the shopcatalog configuration file.

The configuration stores application-wide values:
- log.level / log.format
- http.timeout / http.user_agent
- server.port
- catalog.language / catalog.static_dirs
- verticals[].id / primary_url / fallback_url / static_json`,
	Example: `
  # Create default config in $HOME/.shopcatalog.yaml
  shopcatalog config create

  # Show active config and source file
  shopcatalog config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
