package config

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DB      DBConfig      `mapstructure:"db"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Storage StorageConfig `mapstructure:"storage"`
	AppHost string        `mapstructure:"host"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Drag    DragConfig    `mapstructure:"drag"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type DBConfig struct {
	Source string `mapstructure:"source"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type StorageConfig struct {
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DragConfig struct {
	// SerializeDrops rejects a drop while the previous one is still being persisted.
	SerializeDrops bool   `mapstructure:"serialize_drops"`
	FolderName     string `mapstructure:"folder_name"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.source", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("storage.path", "./data/blobs")
	v.SetDefault("host", "localhost")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("drag.serialize_drops", true)
	v.SetDefault("drag.folder_name", "New folder")
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// Load reads configs/settings.yml when present, then lets environment
// variables (DB_SOURCE, JWT_SECRET, ...) override it. A .env file in the
// working directory is loaded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath("./configs")
	v.AddConfigPath("/configs")
	v.SetConfigName("settings")
	v.SetConfigType("yml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports settings the server cannot run without.
func (c Config) Validate() error {
	return validation.Errors{
		"db.source":  validation.Validate(c.DB.Source, validation.Required),
		"jwt.secret": validation.Validate(c.JWT.Secret, validation.Required),
	}.Filter()
}
