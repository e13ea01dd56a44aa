package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Log      Log
	Plugins  Plugins
	// UploadDir is the root under which per-survey upload directories are provisioned.
	UploadDir string
	// Debug surfaces raw database error messages in activation results.
	Debug bool
}

type Server struct {
	Port string
}

type Database struct {
	Driver   string // "postgres", "mysql" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite only
}

type Log struct {
	Level  string
	Pretty bool
}

type Plugins struct {
	RequireQuestions bool
	ActivationNotice string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PATH", "survey.sqlite")
	viper.SetDefault("UPLOAD_DIR", "upload")
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Pretty = viper.GetBool("LOG_PRETTY")

	config.Plugins.RequireQuestions = viper.GetBool("PLUGIN_REQUIRE_QUESTIONS")
	config.Plugins.ActivationNotice = viper.GetString("PLUGIN_ACTIVATION_NOTICE")

	config.UploadDir = viper.GetString("UPLOAD_DIR")
	config.Debug = viper.GetBool("DEBUG")

	log.Info().
		Str("server_port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Str("db_host", config.Database.Host).
		Str("db_name", config.Database.Name).
		Str("upload_dir", config.UploadDir).
		Bool("debug", config.Debug).
		Msg("Config loaded")
	return &config, nil

}
