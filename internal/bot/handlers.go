package bot

import (
	"log"
	"math/rand"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonYes          = "Да"
	ButtonNo           = "Нет"
	ButtonSkip         = "Пропустить"
	ButtonRetry        = "Еще разок"
	ButtonOverallStats = "Общая статистика"
	ButtonDailyStats   = "Статистика за день"
)

var eagerReplies = []string{
	"Ого, какая тяга к знаниям! 🔥",
	"Ничего себе, давай попробуем! 🚀",
	"Ну давай! Поехали!!! 💪",
}

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "stat":
		t.drill.sendOverallStats(message)
	case "day":
		t.drill.sendDailyStats(message)
	case "help":
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Неизвестная команда. Используй /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	welcomeText := "Привет, " + message.From.FirstName + "! 👋\n\n" +
		"Я создан, чтобы сделать из тебя умныша по умножению! 🧠\n\n" +
		"Задам тебе 20 примеров. Готов?"

	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonYes),
			tgbotapi.NewKeyboardButton(ButtonNo),
		),
	)
	keyboard.OneTimeKeyboard = true
	keyboard.ResizeKeyboard = true

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Доступные команды:
/start — начать тест
/stat — общая статистика
/day — статистика за день

🎯 Во время теста:
• Отправь число — это твой ответ
• "Пропустить" — вопрос вернётся в конце
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	userID := message.From.ID

	switch message.Text {
	case ButtonYes:
		reply := tgbotapi.NewMessage(message.Chat.ID, eagerReplies[rand.Intn(len(eagerReplies))])
		reply.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
		sendMessage(t.bot, reply)
		t.drill.startDrill(message, userID)
	case ButtonNo:
		reply := tgbotapi.NewMessage(message.Chat.ID, "А я всё равно задам! Время пошло! 😈")
		reply.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
		sendMessage(t.bot, reply)
		t.drill.startDrill(message, userID)
	case ButtonRetry:
		t.drill.startDrill(message, userID)
	case ButtonSkip:
		t.drill.handleSkip(message, userID)
	case ButtonOverallStats:
		t.drill.sendOverallStats(message)
	case ButtonDailyStats:
		t.drill.sendDailyStats(message)
	default:
		t.drill.handleAnswer(message, userID)
	}
}
