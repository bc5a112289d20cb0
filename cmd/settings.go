package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/dvrz/dvrz/config"
	"github.com/dvrz/dvrz/pkg/logger"
	"github.com/dvrz/dvrz/pkg/storage"
	"github.com/dvrz/dvrz/pkg/storage/sqlite"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "manage settings",
	Long:  `manage settings`,
}

// settingsGetCmd prints one setting
var settingsGetCmd = &cobra.Command{
	Use:        "get",
	Short:      "get a setting",
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"key"},
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		store := openStore(log)
		ctx := logger.WithCtx(context.Background(), log)

		value, err := store.GetSetting(ctx, args[0])
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Fatalf("setting %q is not set", args[0])
			}
			log.Fatal("failed to read setting", zap.Error(err))
		}
		fmt.Println(value)
	},
}

// settingsSetCmd writes one setting
var settingsSetCmd = &cobra.Command{
	Use:        "set",
	Short:      "set a setting",
	Args:       cobra.ExactArgs(2),
	ArgAliases: []string{"key", "value"},
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		store := openStore(log)
		ctx := logger.WithCtx(context.Background(), log)

		if err := store.SetSetting(ctx, args[0], args[1]); err != nil {
			log.Fatal("failed to write setting", zap.Error(err))
		}
	},
}

func openStore(log *zap.SugaredLogger) storage.Storage {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatal("failed to read configurations", zap.Error(err))
	}

	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		log.Fatal("failed to open storage", zap.Error(err))
	}

	if err := store.Init(context.Background()); err != nil {
		log.Fatal("failed to init database", zap.Error(err))
	}

	return store
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
