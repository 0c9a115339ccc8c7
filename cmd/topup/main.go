package main

import (
	"github.com/avGenie/go-topup-store/internal/app/client/telegram"
	"github.com/avGenie/go-topup-store/internal/app/config"
	server "github.com/avGenie/go-topup-store/internal/app/controller/http/server"
	"github.com/avGenie/go-topup-store/internal/app/logger"
	"github.com/avGenie/go-topup-store/internal/app/usecase/relay"
	"go.uber.org/zap"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	tgClient, err := telegram.New(config.BotToken, config.TelegramAPIURL)
	if err != nil {
		zap.L().Fatal("error while creating telegram client", zap.Error(err))
	}

	notifier, err := relay.New(tgClient, config.ChatID, config.NotifyTimezone)
	if err != nil {
		zap.L().Fatal("error while creating order relay", zap.Error(err))
	}

	zap.L().Info("order relay configured", zap.String("chat_id", config.ChatID))

	server.New(config, notifier).StartHTTPServer()
}
