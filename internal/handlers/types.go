package handlers

import (
	"DriverDesk/internal/config"
	"DriverDesk/internal/kiosk"
	"DriverDesk/internal/telegram_api"
)

// HandlerDependencies содержит все зависимости, необходимые для обработчиков.
// HandlerDependencies contains all dependencies required for handlers.
type HandlerDependencies struct {
	Config  *config.Config
	Sender  telegram_api.Sender
	Service *kiosk.Service
}

// BotHandler отвечает на команды супервайзера в Telegram.
// BotHandler answers supervisor commands sent to the bot.
type BotHandler struct {
	Deps HandlerDependencies
}

// NewBotHandler создает новый экземпляр BotHandler.
func NewBotHandler(deps HandlerDependencies) *BotHandler {
	if deps.Config == nil || deps.Sender == nil || deps.Service == nil {
		panic("Не все зависимости для BotHandler были предоставлены.")
	}
	return &BotHandler{Deps: deps}
}
