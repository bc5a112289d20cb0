package config

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dvrz/dvrz/config/mocks"
	"github.com/spf13/viper"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)
		c, err := New(cu)
		if err == nil {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}

		wantConfig := Config{}
		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %v, want %v", c, wantConfig)
		}
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			TVMaze: TVMaze{
				Scheme: "https",
				Host:   "my-catalog-host",
			},
			Storage: Storage{
				FilePath: "dvrz.db",
			},
			Server: Server{
				Port: 8080,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("tvmaze.scheme", "https")
		cu.SetDefault("server.port", 9090)
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			TVMaze: TVMaze{
				Scheme: "https",
			},
			Server: Server{
				Port: 9090,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})
}

func TestTVMazeURL(t *testing.T) {
	if got := (TVMaze{}).URL(); got != "" {
		t.Errorf("URL() = %q, want empty", got)
	}
	if got := (TVMaze{Host: "my-host"}).URL(); got != "https://my-host" {
		t.Errorf("URL() = %q, want https://my-host", got)
	}
	if got := (TVMaze{Scheme: "http", Host: "my-host"}).URL(); got != "http://my-host" {
		t.Errorf("URL() = %q, want http://my-host", got)
	}
}
