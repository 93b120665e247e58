package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// matchResult is the JSON shape printed by match with --json.
type matchResult struct {
	Matched  bool     `json:"matched"`
	Answer   string   `json:"answer,omitempty"`
	Question string   `json:"question,omitempty"`
	Position *int     `json:"position,omitempty"`
	Score    *float64 `json:"score,omitempty"`
}

func newMatchCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "match <query>",
		Short: "Print the FAQ answer for a query",
		Long:  `Run a query through the lexical engine and print the best answer, or report that no entry is a confident match.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngine(cmd.Context(), v)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			m, ok := engine.Best(query)
			out := cmd.OutOrStdout()

			if v.GetBool("json") {
				result := matchResult{Matched: ok}
				if ok {
					result = matchResult{Matched: true, Answer: m.Answer, Question: m.Question, Position: &m.Position, Score: &m.Score}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			if !ok {
				fmt.Fprintln(out, unmatched("No confident match."))
				return nil
			}
			fmt.Fprintf(out, "%s %s %s\n\n", matched("Matched:"), m.Question, faint(fmt.Sprintf("(entry %d, score %.2f)", m.Position, m.Score)))
			fmt.Fprintln(out, m.Answer)
			return nil
		},
	}
}
