package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dvrz/dvrz/config"
	"github.com/dvrz/dvrz/pkg/logger"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// lookupCmd resolves a show by name
var lookupCmd = &cobra.Command{
	Use:        "lookup",
	Short:      "look up a show by name",
	Long:       `look up a show by name in the catalog, falling back to the library`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"show name"},
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		m, err := newManager(cfg)
		if err != nil {
			log.Fatal("failed to build manager", zap.Error(err))
		}

		ctx := logger.WithCtx(context.Background(), log)
		s, err := m.Lookup(ctx, args[0], sessionUser, sessionToken)
		if err != nil {
			log.Fatal("failed to look up show", zap.Error(err))
		}

		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			log.Fatal("failed to marshal show", zap.Error(err))
		}
		fmt.Println(string(b))
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
