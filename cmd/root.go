/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shopcatalog/config"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shopcatalog",
	Short: "Load, inspect, export, and serve the product catalogs of the shop verticals.",
	Long: `
**********************************************
*              SHOP CATALOG                  *
**********************************************

This CLI loads the product sheets of the shop verticals (tactical, care, merch,
workwear) from their published spreadsheet CSV endpoints, normalizes every row
into a product, and falls back to a static JSON catalog and finally to built-in
products when the sheets are unavailable.

Catalogs can be printed, exported (CSV, Excel, JSON, SQLite) or served as a
local JSON API.
`,
	Example: `
  # Create configuration file
  shopcatalog config create

  # Show the workwear catalog in English, bestsellers first
  shopcatalog catalog --vertical workwear --lang en

  # Only jackets, sorted by name
  shopcatalog catalog --vertical workwear --category jackets --sort name-asc

  # Read an offline sheet download instead of the live endpoint
  shopcatalog catalog --vertical care --file ./care.xlsx

  # Export all verticals as the static fallback catalog
  shopcatalog export --vertical all --format json --output ./data/products.json

  # Serve the JSON API
  shopcatalog serve --port 8080
`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.shopcatalog.yaml, then ./.shopcatalog.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override: debug|info|warn|error")
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in .env, the config file and ENV variables if set.
func initConfig() {
	if err := config.LoadEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".shopcatalog" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".shopcatalog")
	}

	config.BindEnv(viper.GetViper())

	// Built-in defaults apply when no file exists.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			fmt.Fprintln(os.Stderr, "Warning: config file not loaded:", err)
		}
	}
}
