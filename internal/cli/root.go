// Package cli implements faqctl, a command line tool for querying and
// managing the FAQ corpus without running the API server.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nutrition-assistant/internal/corpus"
	"nutrition-assistant/internal/lexical"
	"nutrition-assistant/internal/storage"
)

var (
	matched   = color.New(color.FgGreen, color.Bold).SprintFunc()
	unmatched = color.New(color.FgYellow).SprintFunc()
	heading   = color.New(color.FgCyan).SprintFunc()
	faint     = color.New(color.Faint).SprintFunc()
)

// Execute runs the faqctl root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the faqctl command tree. Flags are bound to a
// dedicated viper instance, so FAQCTL_* environment variables and an optional
// config file fill in anything not given on the command line.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "faqctl",
		Short:         "faqctl: query and manage the nutrition FAQ corpus",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile == "" {
				return nil
			}
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (json, yaml or toml)")
	rootCmd.PersistentFlags().String("source", "embedded", "corpus source: embedded, file or sqlite")
	rootCmd.PersistentFlags().String("corpus", "", "corpus file (.json or .md) or directory when --source=file")
	rootCmd.PersistentFlags().String("db", "./data/nutrition-assistant.db", "SQLite database path")
	rootCmd.PersistentFlags().Bool("json", false, "print JSON instead of text")

	for _, name := range []string{"source", "corpus", "db", "json"} {
		_ = v.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	v.SetEnvPrefix("FAQCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(
		newMatchCommand(v),
		newExplainCommand(v),
		newImportCommand(v),
		newListCommand(v),
	)
	return rootCmd
}

// loadEntries reads the corpus from the configured source.
func loadEntries(ctx context.Context, v *viper.Viper) ([]lexical.Entry, error) {
	switch source := strings.ToLower(v.GetString("source")); source {
	case "embedded":
		return corpus.EmbeddedProvider{}.Load(ctx)
	case "file":
		path := v.GetString("corpus")
		if path == "" {
			return nil, fmt.Errorf("--corpus is required when --source=file")
		}
		return corpus.ForPath(path).Load(ctx)
	case "sqlite":
		db, err := openStore(v.GetString("db"))
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = db.Close()
		}()
		return corpus.StoreProvider{Store: storage.NewFAQRepo(db)}.Load(ctx)
	default:
		return nil, fmt.Errorf("unknown corpus source %q", source)
	}
}

// openStore opens and migrates the database at path, creating its directory
// first so a fresh checkout reads as an empty corpus.
func openStore(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := storage.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func loadEngine(ctx context.Context, v *viper.Viper) (*lexical.Engine, error) {
	entries, err := loadEntries(ctx, v)
	if err != nil {
		return nil, err
	}
	return lexical.NewEngine(entries), nil
}
