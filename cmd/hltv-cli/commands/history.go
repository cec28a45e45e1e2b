package commands

import (
	"fmt"
	"time"

	"hltv-crawler/cmd/hltv-cli/utils"
	"hltv-crawler/lib/scrapers/hltv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		dbPath string
		week   string
		player string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Lists the rankings saved with 'ranking --db', or prints one of them with --week.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			store, err := openStore(cmd, dbPath)
			if err != nil {
				return err
			}
			if store == nil {
				return fmt.Errorf("no database given, use --db or set 'database' in the config")
			}
			defer store.Close()

			switch {
			case week != "":
				date, err := hltv.ParseRankingDate(week)
				if err != nil {
					return err
				}
				snapshot, err := store.Get(ctx, date)
				if err != nil {
					return err
				}
				utils.RenderRanking(out, snapshot.Records)
			case player != "":
				history, err := store.PlayerHistory(ctx, player)
				if err != nil {
					return err
				}
				t := utils.NewTable(out)
				t.AppendHeader(table.Row{"Week", "Team"})
				for _, h := range history {
					team := "-"
					if h.Team != nil {
						team = *h.Team
					}
					t.AppendRow(table.Row{h.Week, team})
				}
				t.Render()
			default:
				weeks, err := store.Weeks(ctx)
				if err != nil {
					return err
				}
				t := utils.NewTable(out)
				t.AppendHeader(table.Row{"Week", "Fetched at"})
				for _, w := range weeks {
					t.AppendRow(table.Row{w.Week, w.FetchedAt.Format(time.ANSIC)})
				}
				t.Render()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the sqlite database, defaults to the configured database.")
	cmd.Flags().StringVar(&week, "week", "", "Print the ranking saved for the week of this date (YYYY-MM-DD).")
	cmd.Flags().StringVar(&player, "player", "", "List the weeks a player was on a ranked roster.")

	return cmd
}
