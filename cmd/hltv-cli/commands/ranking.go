package commands

import (
	"fmt"
	"log/slog"

	"hltv-crawler/cmd/hltv-cli/globals"
	"hltv-crawler/cmd/hltv-cli/utils"
	"hltv-crawler/lib/scrapers/hltv"
	"hltv-crawler/lib/timezone"

	"github.com/spf13/cobra"
)

func newRankingCmd() *cobra.Command {
	var (
		link   string
		date   string
		region string
		output string
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Prints the team ranking of a week (the current one by default).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := globals.Get(ctx).Client

			req := hltv.RankingRequest{Url: link, Date: date, Region: region}
			records, err := client.Ranking(ctx, req)
			if err != nil {
				return err
			}

			store, err := openStore(cmd, dbPath)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()

				week, ok := requestWeek(req)
				if !ok {
					slog.Warn("ranking was requested by url and will not be saved")
				} else {
					err = store.Save(ctx, week, records)
					if err != nil {
						return fmt.Errorf("save ranking: %w", err)
					}
				}
			}

			if output != "" {
				return utils.WriteJson(cmd.OutOrStdout(), output, records)
			}
			utils.RenderRanking(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().StringVar(&link, "url", "", "Scrape this ranking url directly, --date and --region are ignored.")
	cmd.Flags().StringVar(&date, "date", "", "Any date (YYYY-MM-DD) in the week of the ranking.")
	cmd.Flags().StringVar(&region, "region", "", "Region filter, requires --date.")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the ranking as json to this file ('-' for stdout).")
	cmd.Flags().StringVar(&dbPath, "db", "", "Save the ranking to this sqlite database.")

	return cmd
}

// requestWeek is the monday a ranking request belongs to, it is unknown for
// requests by url.
func requestWeek(req hltv.RankingRequest) (hltv.RankingDate, bool) {
	if req.Url != "" {
		return hltv.RankingDate{}, false
	}
	if req.Date == "" {
		return hltv.ResolveRankingDate(timezone.Now()), true
	}
	week, err := hltv.ParseRankingDate(req.Date)
	if err != nil {
		return hltv.RankingDate{}, false
	}
	return week, true
}
