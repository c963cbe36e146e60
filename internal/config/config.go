package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"PORT"`
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	// Client-side settings: which backend the data access facade binds and
	// where the remote one lives.
	Backend        string `mapstructure:"BACKEND"`
	LocalStorePath string `mapstructure:"LOCAL_STORE_PATH"`
	APIBaseURL     string `mapstructure:"API_BASE_URL"`

	DiscordBotToken  string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordChannelID string `mapstructure:"DISCORD_CHANNEL_ID"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("DATABASE_PATH", "portal.db")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("BACKEND", "local")
	viper.SetDefault("LOCAL_STORE_PATH", "portal-local.db")
	viper.SetDefault("API_BASE_URL", "http://localhost:5000/api")

	viper.BindEnv("PORT")
	viper.BindEnv("DATABASE_PATH")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("ADMIN_USERNAME")
	viper.BindEnv("ADMIN_PASSWORD")
	viper.BindEnv("BACKEND")
	viper.BindEnv("LOCAL_STORE_PATH")
	viper.BindEnv("API_BASE_URL")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_CHANNEL_ID")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
