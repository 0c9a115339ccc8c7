package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

var (
	ErrEmptyBotToken = errors.New("telegram bot token is not set")
	ErrEmptyChatID   = errors.New("telegram chat id is not set")
)

type Config struct {
	Port           int      `env:"PORT"`
	LogLevel       string   `env:"LOG_LEVEL"`
	StaticDir      string   `env:"STATIC_DIR"`
	CORSOrigins    []string `env:"CORS_ORIGINS" envSeparator:","`
	BotToken       string   `env:"TELEGRAM_BOT_TOKEN"`
	ChatID         string   `env:"TELEGRAM_CHAT_ID"`
	TelegramAPIURL string   `env:"TELEGRAM_API_URL"`
	NotifyTimezone string   `env:"NOTIFY_TIMEZONE"`
}

func (c Config) NetAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// InitConfig reads .env files, flags and then the environment, which wins
// over flags.
func InitConfig() Config {
	_ = godotenv.Load(".env", ".env.local")

	config, err := ParseConfig(os.Args[1:])
	if err != nil {
		panic(fmt.Errorf("error while parsing config: %w", err))
	}

	return config
}

func ParseConfig(args []string) (config Config, err error) {
	fs := flag.NewFlagSet("topup", flag.ContinueOnError)
	fs.IntVar(&config.Port, "p", 3000, "listening port")
	fs.StringVar(&config.LogLevel, "l", "info", "log level")
	fs.StringVar(&config.StaticDir, "s", "./public", "static files directory")
	fs.StringVar(&config.TelegramAPIURL, "t", "", "telegram bot api url, default api.telegram.org")
	fs.StringVar(&config.NotifyTimezone, "z", "America/Argentina/Buenos_Aires", "time zone of notification timestamps")
	if err = fs.Parse(args); err != nil {
		return Config{}, err
	}

	config.CORSOrigins = []string{"*"}

	if err = env.Parse(&config); err != nil {
		return Config{}, err
	}

	if len(config.BotToken) == 0 {
		return Config{}, ErrEmptyBotToken
	}
	if len(config.ChatID) == 0 {
		return Config{}, ErrEmptyChatID
	}

	return config, nil
}
