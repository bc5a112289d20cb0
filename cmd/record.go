package cmd

import (
	"context"
	"fmt"

	"github.com/dvrz/dvrz/config"
	"github.com/dvrz/dvrz/pkg/logger"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	recordProgramID string
	recordSeries    bool
	recordByName    string
)

// recordCmd schedules a recording
var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "schedule a recording",
	Long:  `schedule a recording by guide program id or by series name`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		if recordProgramID == "" && recordByName == "" {
			log.Fatal("either --program or --name is required")
		}

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		m, err := newManager(cfg)
		if err != nil {
			log.Fatal("failed to build manager", zap.Error(err))
		}

		ctx := logger.WithCtx(context.Background(), log)

		if recordProgramID != "" {
			outcome, err := m.Record(ctx, recordProgramID, recordSeries, sessionUser, sessionToken)
			if err != nil {
				log.Fatal("failed to schedule recording", zap.Error(err))
			}
			fmt.Println(outcome)
			return
		}

		outcome, err := m.RecordSeriesByName(ctx, recordByName, sessionUser, sessionToken)
		if err != nil {
			log.Fatal("failed to schedule series recording", zap.Error(err))
		}
		fmt.Println(outcome)
	},
}

func init() {
	recordCmd.Flags().StringVarP(&recordProgramID, "program", "p", "", "guide program id")
	recordCmd.Flags().BoolVarP(&recordSeries, "series", "s", false, "record the whole series")
	recordCmd.Flags().StringVarP(&recordByName, "name", "n", "", "series name to record")
	rootCmd.AddCommand(recordCmd)
}
