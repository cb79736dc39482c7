// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubfetch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubfetch/internal/export"
	"github.com/pdiddy/pubfetch/internal/pubmed"
	"github.com/pdiddy/pubfetch/internal/secrets"
	"github.com/pdiddy/pubfetch/internal/store"
	"github.com/pdiddy/pubfetch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds NCBI credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command. It runs the fetch pipeline directly:
// search once, fetch one summary per PMID sequentially, then export.
var rootCmd = &cobra.Command{
	Use:   "pubfetch <query>",
	Short: "Search PubMed and export paper metadata to CSV",
	Long: `pubfetch queries the NCBI PubMed E-utilities API for papers matching a
keyword query, fetches the summary record for each matching PMID, and
writes the results to a CSV file or prints them as a table.

Multiple arguments are joined into a single query, so quoting a
multi-word query is optional.`,
	Args: cobra.MinimumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		fmt.Fprintf(os.Stderr, "query: %s\n", query)
	}

	client := pubmed.New(pubmedConfig(cmd))

	records, err := client.FetchAll(cmd.Context(), query)
	if err != nil {
		return err
	}

	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		if err := archiveRun(cmd, dbPath, query, records); err != nil {
			return err
		}
	}

	if runPath, _ := cmd.Flags().GetString("run-file"); runPath != "" {
		if err := export.WriteRunFile(runPath, query, records); err != nil {
			return err
		}
		fmt.Printf("Saved run to %s\n", runPath)
	}

	file, _ := cmd.Flags().GetString("file")
	if file == "" {
		export.FormatTable(records, os.Stdout)
		return nil
	}

	if err := export.WriteCSV(file, records); err != nil {
		return err
	}
	fmt.Printf("Saved %d result(s) to %s\n", len(records), file)
	return nil
}

// pubmedConfig assembles the client configuration from flags, viper
// values, and loaded secrets, in that precedence order.
func pubmedConfig(cmd *cobra.Command) types.PubMedConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("pubmed.timeout")
	}
	retmax, _ := cmd.Flags().GetInt("retmax")
	if retmax == 0 {
		retmax = viper.GetInt("pubmed.retmax")
	}

	return types.PubMedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: viper.GetString("pubmed.user_agent"),
		},
		BaseURL:    viper.GetString("pubmed.base_url"),
		APIKey:     loadedSecrets["ncbi-api-key"],
		Email:      loadedSecrets["ncbi-email"],
		MaxResults: retmax,
	}
}

func archiveRun(cmd *cobra.Command, dbPath, query string, records []types.PaperRecord) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	runID, err := st.SaveRun(cmd.Context(), query, records)
	if err != nil {
		return err
	}
	fmt.Printf("Archived run %d (%d paper(s)) in %s\n", runID, len(records), dbPath)
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubfetch.yaml or ~/.config/pubfetch/config.yaml)")

	rootCmd.Flags().StringP("file", "f", "", "write results to this CSV file instead of printing a table")
	rootCmd.Flags().BoolP("debug", "d", false, "print the query to stderr before searching")
	rootCmd.Flags().Int("retmax", 0, "maximum number of search results (default 20)")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	rootCmd.Flags().String("db", "", "archive this run in a SQLite database at the given path")
	rootCmd.Flags().String("run-file", "", "save the query and results to a YAML run file")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubfetch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubfetch"))
		}
	}

	viper.SetDefault("pubmed.base_url", pubmed.DefaultBaseURL)
	viper.SetDefault("pubmed.timeout", 30*time.Second)
	viper.SetDefault("pubmed.retmax", 20)
	viper.SetDefault("pubmed.user_agent", "pubfetch/0.1")

	viper.SetEnvPrefix("PUBFETCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
