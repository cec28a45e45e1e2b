package commands

import (
	"fmt"
	"strings"

	"hltv-crawler/cmd/hltv-cli/globals"
	"hltv-crawler/cmd/hltv-cli/utils"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Searches the site and prints the results grouped by category.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			result, err := globals.Get(ctx).Client.Search(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			if output != "" {
				return utils.WriteJson(cmd.OutOrStdout(), output, result)
			}
			if result.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "No results.")
				return nil
			}
			utils.RenderSearch(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the results as json to this file ('-' for stdout).")

	return cmd
}
