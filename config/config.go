package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Plex         Plex          `json:"plex" yaml:"plex" mapstructure:"plex"`
	Radarr       []ArrInstance `json:"radarr" yaml:"radarr" mapstructure:"radarr" validate:"dive"`
	Sonarr       []ArrInstance `json:"sonarr" yaml:"sonarr" mapstructure:"sonarr" validate:"dive"`
	Storage      Storage       `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server       Server        `json:"server" yaml:"server" mapstructure:"server"`
	Availability Availability  `json:"availability" yaml:"availability" mapstructure:"availability"`
}

// Plex is the media server connection. An empty host disables media server
// probes; every probe then reports the item absent.
type Plex struct {
	Scheme string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host   string `json:"host" yaml:"host" mapstructure:"host"`
	Token  string `json:"token" yaml:"token" mapstructure:"token"`

	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

// ArrInstance is one automation manager instance. Is4k selects which tier the
// instance answers for.
type ArrInstance struct {
	Name        string `json:"name" yaml:"name" mapstructure:"name" validate:"required"`
	Scheme      string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host        string `json:"host" yaml:"host" mapstructure:"host" validate:"required"`
	APIKey      string `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey" validate:"required"`
	Is4k        bool   `json:"is4k" yaml:"is4k" mapstructure:"is4k"`
	SyncEnabled *bool  `json:"syncEnabled,omitempty" yaml:"syncEnabled,omitempty" mapstructure:"syncEnabled"`
}

// Syncs reports whether the instance takes part in availability runs.
// Instances are in unless explicitly opted out.
func (a ArrInstance) Syncs() bool {
	return a.SyncEnabled == nil || *a.SyncEnabled
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Availability houses the reconciliation run settings
type Availability struct {
	PageSize int  `json:"pageSize" yaml:"pageSize" mapstructure:"pageSize"`
	Jobs     Jobs `json:"jobs" yaml:"jobs" mapstructure:"jobs"`
}

type Jobs struct {
	AvailabilitySync    time.Duration `json:"availabilitySync" yaml:"availabilitySync" mapstructure:"availabilitySync"`
	JobScheduleInterval time.Duration `json:"scheduleInterval" yaml:"scheduleInterval" mapstructure:"scheduleInterval"`
	CleanupPeriod       time.Duration `json:"cleanupPeriod" yaml:"cleanupPeriod" mapstructure:"cleanupPeriod"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	err = validator.New().Struct(c)
	return c, err
}
