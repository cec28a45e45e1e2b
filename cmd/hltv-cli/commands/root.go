package commands

import (
	"fmt"
	"os"

	"hltv-crawler/cmd/hltv-cli/globals"
	"hltv-crawler/internal/config"
	"hltv-crawler/internal/telemetry"
	"hltv-crawler/lib/rankingstore"
	"hltv-crawler/lib/scrapers/hltv"
	libtelemetry "hltv-crawler/lib/telemetry"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	config  string
	baseUrl string
	verbose bool
}

// NewRootCmd builds the command tree, every call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	closeCache := func() error { return nil }

	rootCmd := &cobra.Command{
		Use:           "hltv-cli",
		Short:         "hltv-cli scrapes team rankings and search results from HLTV.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			libtelemetry.InitSlog(flags.verbose)

			cfg, err := config.Load(flags.config)
			if err != nil {
				return err
			}
			if flags.baseUrl != "" {
				cfg.Site.BaseUrl = flags.baseUrl
			}

			cache, closer, err := cfg.OpenCache(cmd.Context())
			if err != nil {
				return err
			}
			closeCache = closer
			client, err := hltv.NewClient(cfg.ClientOptions(telemetry.SlogAPI{}, cache, flags.verbose))
			if err != nil {
				return err
			}

			cmd.SetContext(globals.Set(cmd.Context(), &globals.Value{
				Config: cfg,
				Client: client,
			}))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeCache()
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "config.json5", "Path to the config file.")
	rootCmd.PersistentFlags().StringVar(&flags.baseUrl, "base-url", "", "Overrides the base url of the site.")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging and request dumps.")

	rootCmd.AddCommand(newRankingCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newTeamCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore prefers the --db flag over the configured database, the store
// is nil if neither is set.
func openStore(cmd *cobra.Command, dbPath string) (*rankingstore.Store, error) {
	cfg := globals.Get(cmd.Context()).Config.Database
	if dbPath != "" {
		cfg = rankingstore.Config{File: dbPath}
	}
	if !cfg.Enabled() {
		return nil, nil
	}
	return rankingstore.Open(cmd.Context(), cfg)
}
