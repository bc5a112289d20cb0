package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dvrz/dvrz/config"
	"github.com/dvrz/dvrz/pkg/logger"
	"github.com/dvrz/dvrz/pkg/manager"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// guideCmd prints the reconciled guide grid
var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "show the program guide",
	Long:  `show the program guide with recording state per program`,
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
		guide, err := m.Guide(ctx, sessionUser, sessionToken)
		if err != nil {
			log.Fatal("failed to fetch guide", zap.Error(err))
		}

		for _, ch := range guide.Channels {
			fmt.Printf("%s (%s)\n", ch.Name, ch.ChannelNumber)
			for _, p := range ch.Programs {
				fmt.Printf("  %s %s%s\n", startLabel(p.StartDate), p.Name, recordingLabel(p))
			}
		}
	},
}

func startLabel(startDate string) string {
	t, err := time.Parse(time.RFC3339, startDate)
	if err != nil {
		return startDate
	}
	return humanize.Time(t)
}

func recordingLabel(p manager.GuideProgram) string {
	switch {
	case p.IsSeriesRecording:
		return " [series recording]"
	case p.IsRecording:
		return " [recording]"
	default:
		return ""
	}
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
