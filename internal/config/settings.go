package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

// ImportSettings describes the optional remote vCard source used by the
// import-url command. The password never lives in the settings file; it is
// resolved from the OS keyring at runtime.
type ImportSettings struct {
	URL  string `mapstructure:"url"`
	User string `mapstructure:"user"`
}

// Settings holds the runtime configuration of the assistant.
type Settings struct {
	Language   string         `mapstructure:"language"`
	WindowDays int            `mapstructure:"window_days"`
	FeedPort   string         `mapstructure:"feed_port"`
	Import     ImportSettings `mapstructure:"import"`
}

// LoadSettings reads configuration from an explicit file, or searches the
// user config dir and the working directory when path is empty. Environment
// variables prefixed with GOCONTACTS_ override file values either way.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()

	v.SetDefault(SettingLanguage, DefaultLanguage)
	v.SetDefault(SettingWindowDays, DefaultWindowDays)
	v.SetDefault(SettingFeedPort, DefaultFeedPort)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrSettingsRead, err)
		}
	} else {
		v.SetConfigName(SettingsFileName)
		v.SetConfigType(SettingsFileType)
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppID))
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			// Running without a settings file is the normal case.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("%s: %w", ErrSettingsRead, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSettingsDecode, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	slog.Debug(MsgSettingsLoaded,
		LogKeyComponent, CompSettings,
		LogKeyLang, s.Language,
		LogKeyWindow, s.WindowDays,
		LogKeyPort, s.FeedPort,
	)
	return &s, nil
}

func (s *Settings) validate() error {
	if s.WindowDays <= 0 {
		return errors.New(ErrWindowPositive)
	}
	if s.FeedPort != "" {
		n, err := strconv.Atoi(s.FeedPort)
		if err != nil {
			return errors.New(ErrPortNumber)
		}
		if n < MinPort || n > MaxPort {
			return errors.New(ErrPortRange)
		}
	}
	return nil
}

// ResolvePassword looks up the import password in the OS keyring under the
// configured user name. Keeping credentials out of the settings file (and
// out of shell history) mirrors how the CardDAV URL itself is non-secret.
func (s *Settings) ResolvePassword() string {
	if s.Import.User == "" {
		return ""
	}
	pass, err := keyring.Get(KeyringService, s.Import.User)
	if err != nil {
		slog.Debug(MsgPassFail,
			LogKeyComponent, CompSettings,
			LogKeyUser, s.Import.User,
			LogKeyError, err,
		)
		return ""
	}
	return pass
}
