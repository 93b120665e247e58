package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nutrition-assistant/internal/lexical"
)

func newExplainCommand(v *viper.Viper) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "explain <query>",
		Short: "Show how each FAQ entry scores against a query",
		Long: `List the highest scoring entries for a query with every score component,
so corpus wording can be tuned against real questions.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine(cmd.Context(), v)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			ranked := engine.Rank(query)
			if limit > 0 && len(ranked) > limit {
				ranked = ranked[:limit]
			}
			out := cmd.OutOrStdout()

			if v.GetBool("json") {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(ranked)
			}

			q := lexical.PrepareQuery(query)
			fmt.Fprintf(out, "%s %q\n", heading("Query tokens:"), q.Tokens)
			if len(ranked) == 0 {
				fmt.Fprintln(out, unmatched("No entry shares anything with this query."))
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "POS\tSCORE\tEXACT\tCONTAIN\tOVERLAP\tTERM\tCOUNT\tSHORT\tQUESTION")
			for i, r := range ranked {
				b := r.Breakdown
				score := fmt.Sprintf("%.2f", r.Score)
				if i == 0 && r.Score >= lexical.ConfidenceThreshold {
					score = matched(score)
				}
				fmt.Fprintf(tw, "%d\t%s\t%.0f\t%.0f\t%d/%d\t%.2f\t%.0f\t%.0f\t%s\n",
					r.Position, score, b.Exact, b.Containment, b.Overlap, b.Union,
					b.OverlapTerm, b.CountBonus, b.ShortBonus, r.Question)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if ranked[0].Score < lexical.ConfidenceThreshold {
				fmt.Fprintln(out, unmatched(fmt.Sprintf("Best score is below the %.0f threshold; match would report no answer.", lexical.ConfidenceThreshold)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "maximum entries to show (0 for all)")
	return cmd
}
