package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nutrition-assistant/internal/corpus"
	"nutrition-assistant/internal/storage"
)

func newImportCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the SQLite corpus with a JSON or Markdown file or directory",
		Long:  `Parse a corpus file or directory and store its entries in the database given by --db, replacing whatever was stored before. Entry order is preserved.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			entries, err := corpus.ForPath(args[0]).Load(ctx)
			if err != nil {
				return err
			}

			dbPath := v.GetString("db")
			db, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := corpus.Import(ctx, storage.NewFAQRepo(db), entries); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d entries into %s\n", matched("Imported"), len(entries), dbPath)
			return nil
		},
	}
}
