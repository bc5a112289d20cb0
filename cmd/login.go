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
	loginUsername string
	loginPassword string
)

// loginCmd exchanges credentials for an access token
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "authenticate against the media server",
	Long:  `authenticate against the media server and print the access token`,
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
		res, err := m.Login(ctx, loginUsername, loginPassword)
		if err != nil {
			log.Fatal("failed to authenticate", zap.Error(err))
		}

		fmt.Printf("user: %s\ntoken: %s\n", res.User.ID, res.AccessToken)
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "media server username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "media server password")
	loginCmd.MarkFlagRequired("username")
	rootCmd.AddCommand(loginCmd)
}
