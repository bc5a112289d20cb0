package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// session flags shared by the commands that talk to the media server
var (
	sessionToken string
	sessionUser  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dvrz",
	Short: "dvrz cli",
	Long:  `dvrz cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&sessionToken, "token", "", "media server access token")
	rootCmd.PersistentFlags().StringVar(&sessionUser, "user", "", "media server user id")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("DVRZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tvmaze.scheme", "https")
	viper.SetDefault("tvmaze.host", "")
	viper.SetDefault("tvmaze.backoff", time.Millisecond*500)
	viper.SetDefault("tvmaze.maxRetries", 3)

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "dvrz.sqlite")
}
