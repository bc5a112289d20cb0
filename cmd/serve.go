package cmd

import (
	"context"

	"github.com/dvrz/dvrz/config"
	"github.com/dvrz/dvrz/pkg/cache"
	mhttp "github.com/dvrz/dvrz/pkg/http"
	"github.com/dvrz/dvrz/pkg/jellyfin"
	"github.com/dvrz/dvrz/pkg/logger"
	"github.com/dvrz/dvrz/pkg/manager"
	"github.com/dvrz/dvrz/pkg/storage"
	"github.com/dvrz/dvrz/pkg/storage/sqlite"
	"github.com/dvrz/dvrz/pkg/tvmaze"
	"github.com/dvrz/dvrz/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the dvr server",
	Long:  `start the dvr server`,
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

		server := server.New(log, m)
		log.Error(server.Serve(cfg.Server.Port))
	},
}

// newManager wires the storage, catalog, and media-server clients behind a
// reconciliation manager. Migrations run before the manager is handed out.
func newManager(cfg config.Config) (manager.Manager, error) {
	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return manager.Manager{}, err
	}

	if err := store.Init(context.Background()); err != nil {
		return manager.Manager{}, err
	}

	catalog := newCatalog(cfg, store)
	broadcast := jellyfin.New(store)

	return manager.New(broadcast, catalog, store, cache.New[any]()), nil
}

func newCatalog(cfg config.Config, cache storage.MetadataCacheStorage) *tvmaze.Client {
	httpClient := mhttp.NewRateLimitedClient(
		mhttp.WithMaxRetries(cfg.TVMaze.MaxRetries),
		mhttp.WithBaseBackoff(cfg.TVMaze.BaseBackoff),
	)

	opts := []tvmaze.Option{tvmaze.WithHTTPClient(httpClient)}
	if u := cfg.TVMaze.URL(); u != "" {
		opts = append(opts, tvmaze.WithBaseURL(u))
	}

	return tvmaze.New(cache, opts...)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
