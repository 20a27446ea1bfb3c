package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"planter/advisor"
	"planter/engine"
	"planter/game"
	"planter/meta"
	"planter/tuning"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	tuningPathKey   = "tuning.path"
	displayCountKey = "display.count"
	logLevelKey     = "log.level"
	serverPortKey   = "server.port"
	firstPlayerKey  = "session.first_player"
)

// flagKeys binds command line flags onto config keys. Flags a command does
// not define are skipped.
var flagKeys = map[string]string{
	"tuning":    tuningPathKey,
	"count":     displayCountKey,
	"log-level": logLevelKey,
	"port":      serverPortKey,
	"first":     firstPlayerKey,
}

type settings struct {
	Count       int
	Port        int
	FirstPlayer game.Player
	Weights     advisor.Weights
}

type app struct {
	configPath string
	cfg        *viper.Viper
	settings   settings
}

func newConfig(path string) (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetDefault(displayCountKey, meta.DefaultCount)
	cfg.SetDefault(logLevelKey, meta.DefaultLogLevel)
	cfg.SetDefault(serverPortKey, meta.DefaultPort)
	cfg.SetDefault(firstPlayerKey, meta.DefaultFirstPlayer)
	cfg.SetDefault(tuningPathKey, "")

	cfg.SetEnvPrefix(meta.EnvPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if path != "" {
		cfg.SetConfigFile(path)
		if err := cfg.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		return cfg, nil
	}

	cfg.SetConfigName(meta.ConfigName)
	cfg.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		cfg.AddConfigPath(filepath.Join(home, ".config", meta.ConfigName))
	}
	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	return cfg, nil
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := newConfig(a.configPath)
	if err != nil {
		return err
	}
	for name, key := range flagKeys {
		if f := cmd.Flag(name); f != nil {
			if err := cfg.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}
	a.cfg = cfg

	if err := setupLogging(cmd, cfg.GetString(logLevelKey)); err != nil {
		return err
	}
	if path := cfg.ConfigFileUsed(); path != "" {
		log.Debug().Msgf("using config %s", path)
	}

	s := settings{
		Count:   cfg.GetInt(displayCountKey),
		Port:    cfg.GetInt(serverPortKey),
		Weights: advisor.DefaultWeights(),
	}
	if s.FirstPlayer, err = game.ParsePlayer(cfg.GetString(firstPlayerKey)); err != nil {
		return fmt.Errorf("%s: %w", firstPlayerKey, err)
	}
	if path := cfg.GetString(tuningPathKey); path != "" {
		if s.Weights, err = tuning.Load(path); err != nil {
			return err
		}
		log.Debug().Msgf("loaded weights from %s", path)
	}
	a.settings = s
	return nil
}

// sessionOptions configure every session the CLI creates.
func (a *app) sessionOptions(options ...engine.Option) []engine.Option {
	return append([]engine.Option{engine.WithWeights(a.settings.Weights)}, options...)
}

func setupLogging(cmd *cobra.Command, level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
	return nil
}
