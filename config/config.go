package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App  AppConfig
	DB   DBConfig
	Seed SeedConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type SeedConfig struct {
	Users             int
	ClaimsPerUser     int
	PaymentsPerPolicy int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env is optional; environment variables alone are enough
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(".env"); !os.IsNotExist(statErr) {
			return nil, err
		}
	}

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_PATH", "claims.db")
	viper.SetDefault("SEED_USERS", 5)
	viper.SetDefault("SEED_CLAIMS_PER_USER", 3)
	viper.SetDefault("SEED_PAYMENTS_PER_POLICY", 4)

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Path:     viper.GetString("DB_PATH"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Seed: SeedConfig{
			Users:             viper.GetInt("SEED_USERS"),
			ClaimsPerUser:     viper.GetInt("SEED_CLAIMS_PER_USER"),
			PaymentsPerPolicy: viper.GetInt("SEED_PAYMENTS_PER_POLICY"),
		},
	}

	return config, nil
}
