package commands

import (
	"fmt"
	"strings"

	"hltv-crawler/cmd/hltv-cli/globals"
	"hltv-crawler/cmd/hltv-cli/utils"
	"hltv-crawler/lib/scrapers/hltv"

	"github.com/spf13/cobra"
)

func newTeamCmd() *cobra.Command {
	var date string
	var player string

	cmd := &cobra.Command{
		Use:   "team <name> | team --player <nickname>",
		Short: "Finds a team in the ranking, the name does not need to be exact.",
		Args: func(cmd *cobra.Command, args []string) error {
			if player != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			records, err := globals.Get(ctx).Client.Ranking(ctx, hltv.RankingRequest{Date: date})
			if err != nil {
				return err
			}

			var record hltv.RankingRecord
			var ok bool
			if player != "" {
				record, ok = hltv.FindPlayer(records, player)
				if !ok {
					return fmt.Errorf("'%s' is not on a ranked team", player)
				}
			} else {
				name := strings.Join(args, " ")
				record, ok = hltv.FindTeam(records, name)
				if !ok {
					return fmt.Errorf("'%s' is not in the ranking", name)
				}
			}

			utils.RenderRanking(cmd.OutOrStdout(), []hltv.RankingRecord{record})
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date (YYYY-MM-DD) in the week of the ranking.")
	cmd.Flags().StringVar(&player, "player", "", "Find the team this player is on instead.")

	return cmd
}
