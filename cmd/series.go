package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/dvrz/dvrz/config"
	"github.com/dvrz/dvrz/pkg/logger"
	"github.com/dvrz/dvrz/pkg/manager"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// seriesCmd prints the reconciled per-episode view of one series
var seriesCmd = &cobra.Command{
	Use:        "series",
	Short:      "show a series with per-episode state",
	Long:       `show a series with per-episode owned/recording/upcoming state`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"catalog id or library guid"},
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
		res, err := m.Series(ctx, args[0], sessionUser, sessionToken)
		if err != nil {
			log.Fatal("failed to fetch series", zap.Error(err))
		}

		fmt.Printf("%s", res.Show.Name)
		if res.IsMonitored {
			fmt.Printf(" [monitored]")
		}
		fmt.Println()

		seasons := make([]int, 0, len(res.Seasons))
		for n := range res.Seasons {
			seasons = append(seasons, n)
		}
		sort.Ints(seasons)

		for _, n := range seasons {
			fmt.Printf("Season %d\n", n)
			for _, ep := range res.Seasons[n] {
				fmt.Printf("  E%02d %s%s\n", ep.Number, ep.Name, episodeLabel(ep))
			}
		}

		for _, t := range res.UnmappedRecordings {
			fmt.Printf("unmapped: %s\n", t.Name)
		}
	},
}

func episodeLabel(ep manager.EpisodeState) string {
	switch {
	case ep.Owned:
		return " [owned]"
	case ep.IsRecording:
		return " [recording]"
	case ep.Upcoming:
		return " [upcoming]"
	default:
		return ""
	}
}

func init() {
	rootCmd.AddCommand(seriesCmd)
}
