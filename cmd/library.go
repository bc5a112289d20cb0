package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dvrz/dvrz/config"
	"github.com/dvrz/dvrz/pkg/logger"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// libraryCmd lists the monitored series
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "list monitored series",
	Long:  `list monitored series with timer and recording counts`,
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
		rows, err := m.Monitored(ctx, sessionUser, sessionToken)
		if err != nil {
			log.Fatal("failed to fetch monitored series", zap.Error(err))
		}

		for _, row := range rows {
			next := ""
			if t, err := time.Parse(time.RFC3339, row.NextStart); err == nil {
				next = fmt.Sprintf(", next %s", humanize.Time(t))
			}
			fmt.Printf("%s: %d timers, %d recordings%s\n", row.Name, row.TimerCount, row.RecordingCount, next)
		}
	},
}

func init() {
	rootCmd.AddCommand(libraryCmd)
}
