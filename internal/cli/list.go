package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nutrition-assistant/internal/corpus"
)

func newListCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the questions in the corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := loadEntries(cmd.Context(), v)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			// same format import reads
			if v.GetBool("json") {
				data, err := corpus.MarshalJSON(entries)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			fmt.Fprintf(out, "%s %d entries\n", heading("Corpus:"), len(entries))
			for i, e := range entries {
				fmt.Fprintf(out, "%3d  %s\n", i, e.Question)
			}
			return nil
		},
	}
}
