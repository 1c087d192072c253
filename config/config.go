package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Auth         Auth
	GeminiApiKey string
	AITimeout    time.Duration
	CORS         CORS
	Upload       Upload
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Auth struct {
	SecretKey     string
	TokenLifetime time.Duration
}

type CORS struct {
	AllowOrigins []string
}

type Upload struct {
	Dir          string
	MaxSizeBytes int64
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 60*24*8)
	viper.SetDefault("AI_TIMEOUT_SECONDS", 60)
	viper.SetDefault("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("MAX_UPLOAD_SIZE_MB", 50)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Auth.SecretKey = viper.GetString("SECRET_KEY")
	config.Auth.TokenLifetime = time.Duration(viper.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES")) * time.Minute

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.AITimeout = time.Duration(viper.GetInt("AI_TIMEOUT_SECONDS")) * time.Second

	config.CORS.AllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")

	config.Upload.Dir = viper.GetString("UPLOAD_DIR")
	config.Upload.MaxSizeBytes = viper.GetInt64("MAX_UPLOAD_SIZE_MB") * 1024 * 1024

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
