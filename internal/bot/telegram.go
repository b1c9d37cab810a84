package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ServiceI interface {
	DrillSI
	StatsSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	bot   *tgbotapi.BotAPI
	drill *DrillT
}

func NewTelegramAPI(botToken, env string, service ServiceI) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = env == "development"

	return &TelegramAPI{
		bot:   bot,
		drill: NewDrillTAPI(bot, service),
	}, nil
}

func (t *TelegramAPI) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
	}
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
	} else {
		log.Printf("Sent message to %d", sentMsg.Chat.ID)
	}
}
