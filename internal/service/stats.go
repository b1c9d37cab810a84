package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sheav-web/-math-bot-telegram-two/internal/models"
	"go.uber.org/zap"
)

type StatsS struct {
	repo ProfileRI
	log  *zap.Logger
	now  func() time.Time
}

func NewStatsService(repo ProfileRI, log *zap.Logger) *StatsS {
	return &StatsS{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// Overall reports best/worst/average times over all attempts and the
// three most frequent mistakes from the last seven days.
func (s *StatsS) Overall(ctx context.Context, userID int64) (string, error) {
	attempts, err := s.repo.Attempts(ctx, userID)
	if err != nil {
		s.log.Warn("failed to load attempts", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}
	if len(attempts) == 0 {
		return "", models.ErrNoAttempts
	}

	best, worst := attempts[0], attempts[0]
	sum := 0
	for _, a := range attempts {
		if a.Elapsed < best.Elapsed {
			best = a
		}
		if a.Elapsed > worst.Elapsed {
			worst = a
		}
		sum += a.Elapsed
	}
	avg := sum / len(attempts)

	weekAgo := s.now().AddDate(0, 0, -7)
	var recentMissed []string
	for _, a := range attempts {
		if !a.Date.Before(weekAgo) {
			recentMissed = append(recentMissed, a.Missed...)
		}
	}

	errorText := "нет данных"
	if top := topMissed(recentMissed, 3); len(top) > 0 {
		lines := make([]string, 0, len(top))
		for _, m := range top {
			lines = append(lines, fmt.Sprintf("%s → %d раз", m.prompt, m.count))
		}
		errorText = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(
		"📊 Общая статистика:\n"+
			"🥇 Лучшее: %s (%s)\n"+
			"🐌 Худшее: %s (%s)\n"+
			"📈 Среднее: %s\n\n"+
			"❗ Частые ошибки (последние 7 дней):\n%s",
		FormatElapsed(best.Elapsed), best.Date.Format(models.AttemptDateLayout),
		FormatElapsed(worst.Elapsed), worst.Date.Format(models.AttemptDateLayout),
		FormatElapsed(avg),
		errorText,
	), nil
}

// Daily reports every attempt completed on the current calendar day.
func (s *StatsS) Daily(ctx context.Context, userID int64) (string, error) {
	attempts, err := s.repo.Attempts(ctx, userID)
	if err != nil {
		s.log.Warn("failed to load attempts", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}
	if len(attempts) == 0 {
		return "", models.ErrNoAttempts
	}

	today := s.now().Format("2006-01-02")
	var todays []models.AttemptRecord
	for _, a := range attempts {
		if a.Date.Format("2006-01-02") == today {
			todays = append(todays, a)
		}
	}
	if len(todays) == 0 {
		return "", models.ErrNoAttemptsToday
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 Статистика за сегодня (%s):\n\n", today)
	fmt.Fprintf(&sb, "Пройдено тестов: %d\n\n", len(todays))
	for i, a := range todays {
		missed := "нет"
		if len(a.Missed) > 0 {
			missed = strings.Join(a.Missed, ", ")
		}
		fmt.Fprintf(&sb, "Попытка %d (%s):\n  Ошибки: %s\n\n", i+1, FormatElapsed(a.Elapsed), missed)
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}

type missedCount struct {
	prompt string
	count  int
}

// topMissed returns the n most frequent prompts; ties keep first-seen
// order.
func topMissed(prompts []string, n int) []missedCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, p := range prompts {
		if counts[p] == 0 {
			order = append(order, p)
		}
		counts[p]++
	}

	ranked := make([]missedCount, 0, len(order))
	for _, p := range order {
		ranked = append(ranked, missedCount{prompt: p, count: counts[p]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// FormatElapsed renders seconds as M:SS past a minute, bare seconds
// under it.
func FormatElapsed(seconds int) string {
	m, s := seconds/60, seconds%60
	if m > 0 {
		return fmt.Sprintf("%d:%02d", m, s)
	}
	return fmt.Sprintf("%d сек", s)
}
