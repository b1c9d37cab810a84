package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/sheav-web/-math-bot-telegram-two/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type DrillSI interface {
	StartDrill(userID int64) models.Prompt
	SubmitAnswer(ctx context.Context, userID int64, text string) (models.TurnResult, error)
	SkipQuestion(ctx context.Context, userID int64) (models.TurnResult, error)
}

type StatsSI interface {
	Overall(ctx context.Context, userID int64) (string, error)
	Daily(ctx context.Context, userID int64) (string, error)
}

var comments = map[models.Difficulty][]string{
	models.DifficultySimple: {
		"Это легкотня!",
		"Просто как дважды два!",
		"Ну это совсем просто!",
		"А тут и думать не нужно!",
	},
	models.DifficultyHard: {
		"О! Это посложнее…",
		"Тут нужно подумать!",
		"С таким справишься?",
		"А такой?",
	},
	models.DifficultyNormal: {
		"Далее!",
		"Еще!",
		"Следующий!",
	},
}

type DrillT struct {
	bot     BotSender
	service ServiceI
}

func NewDrillTAPI(bot BotSender, service ServiceI) *DrillT {
	return &DrillT{
		bot:     bot,
		service: service,
	}
}

func (t *DrillT) startDrill(message *tgbotapi.Message, userID int64) {
	prompt := t.service.StartDrill(userID)
	t.sendPrompt(message.Chat.ID, prompt)
}

func (t *DrillT) handleAnswer(message *tgbotapi.Message, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := t.service.SubmitAnswer(ctx, userID, message.Text)
	switch {
	case errors.Is(err, models.ErrNoActiveSession):
		msg := tgbotapi.NewMessage(message.Chat.ID, "Я не понял. Отправь /start, чтобы начать тест.")
		sendMessage(t.bot, msg)
		return
	case errors.Is(err, models.ErrNotANumber):
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "Введите число!"))
		return
	case err != nil:
		log.Printf("failed to process answer for user %d: %v", userID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Что-то пошло не так. Попробуй ещё раз."))
		return
	}

	t.sendTurn(message.Chat.ID, result)
}

func (t *DrillT) handleSkip(message *tgbotapi.Message, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := t.service.SkipQuestion(ctx, userID)
	if err != nil {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Сейчас нет активного теста. Отправь /start.")
		sendMessage(t.bot, msg)
		return
	}

	t.sendTurn(message.Chat.ID, result)
}

func (t *DrillT) sendTurn(chatID int64, result models.TurnResult) {
	if result.Prompt != nil {
		t.sendPrompt(chatID, *result.Prompt)
		return
	}
	if result.Summary != nil {
		t.sendSummary(chatID, *result.Summary)
	}
}

func (t *DrillT) sendPrompt(chatID int64, prompt models.Prompt) {
	var sb strings.Builder

	if prompt.Comment {
		flavored := comments[prompt.Difficulty]
		sb.WriteString(flavored[rand.Intn(len(flavored))])
		sb.WriteString("\n\n")
	}

	if prompt.Resumed {
		sb.WriteString("🔁 Пропущенный вопрос\n\n")
	}

	fmt.Fprintf(&sb, "Вопрос %d: %s", prompt.Index+1, prompt.Text)

	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(ButtonSkip)),
	)
	keyboard.OneTimeKeyboard = true
	keyboard.ResizeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *DrillT) sendSummary(chatID int64, summary models.AttemptSummary) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "✅ %d/%d за %s\n\n", summary.Correct, summary.Total, formatTime(summary.Elapsed))

	if len(summary.Missed) == 0 {
		sb.WriteString("🎉 Отлично! Нет ошибок!")
	} else {
		sb.WriteString("❌ Ошибки:\n")
		for _, m := range summary.Missed {
			fmt.Fprintf(&sb, "  %s → Правильно: %d\n", m.Prompt, m.Answer)
		}
	}

	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(ButtonRetry)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(ButtonOverallStats)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(ButtonDailyStats)),
	)
	keyboard.ResizeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *DrillT) sendOverallStats(message *tgbotapi.Message) {
	t.sendStats(message, func(ctx context.Context, userID int64) (string, error) {
		return t.service.Overall(ctx, userID)
	})
}

func (t *DrillT) sendDailyStats(message *tgbotapi.Message) {
	t.sendStats(message, func(ctx context.Context, userID int64) (string, error) {
		return t.service.Daily(ctx, userID)
	})
}

func (t *DrillT) sendStats(message *tgbotapi.Message, query func(context.Context, int64) (string, error)) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	report, err := query(ctx, message.From.ID)
	switch {
	case errors.Is(err, models.ErrNoAttempts):
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "Сначала пройдите тест!"))
		return
	case errors.Is(err, models.ErrNoAttemptsToday):
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "Сегодня тесты не проходились."))
		return
	case err != nil:
		log.Printf("failed to get stats for user %d: %v", message.From.ID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Ошибка получения статистики"))
		return
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, report))
}

func formatTime(seconds int) string {
	m, s := seconds/60, seconds%60
	if m > 0 {
		return fmt.Sprintf("%d:%02d", m, s)
	}
	return fmt.Sprintf("%d сек", s)
}
