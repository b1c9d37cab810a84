package service

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/sheav-web/-math-bot-telegram-two/internal/models"
	"github.com/sheav-web/-math-bot-telegram-two/internal/quiz"
	"github.com/sheav-web/-math-bot-telegram-two/internal/storage/cache"
	"go.uber.org/zap"
)

type DrillS struct {
	repo     ProfileRI
	sessions *cache.Sessions
	log      *zap.Logger
	now      func() time.Time
}

func NewDrillService(repo ProfileRI, sessions *cache.Sessions, log *zap.Logger) *DrillS {
	return &DrillS{
		repo:     repo,
		sessions: sessions,
		log:      log,
		now:      time.Now,
	}
}

// StartDrill generates a fresh question set and opens a session for
// the user, replacing any attempt still in flight.
func (d *DrillS) StartDrill(userID int64) models.Prompt {
	session := quiz.NewSession(quiz.Generate())
	d.sessions.Set(userID, session)
	return d.prompt(session)
}

// SubmitAnswer applies one answer to the user's session. A non-numeric
// answer is rejected without touching the session state.
func (d *DrillS) SubmitAnswer(ctx context.Context, userID int64, text string) (models.TurnResult, error) {
	session, exists := d.sessions.Get(userID)
	if !exists {
		return models.TurnResult{}, models.ErrNoActiveSession
	}

	answer, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return models.TurnResult{}, models.ErrNotANumber
	}

	adv := session.Submit(answer)
	if !adv.Done {
		prompt := d.prompt(session)
		return models.TurnResult{Prompt: &prompt}, nil
	}

	return d.finish(ctx, userID, session), nil
}

// SkipQuestion defers the current question to the end of the attempt.
func (d *DrillS) SkipQuestion(ctx context.Context, userID int64) (models.TurnResult, error) {
	session, exists := d.sessions.Get(userID)
	if !exists {
		return models.TurnResult{}, models.ErrNoActiveSession
	}

	adv := session.Skip()
	if !adv.Done {
		prompt := d.prompt(session)
		return models.TurnResult{Prompt: &prompt}, nil
	}

	return d.finish(ctx, userID, session), nil
}

func (d *DrillS) prompt(session *quiz.Session) models.Prompt {
	q, idx := session.Current()
	return models.Prompt{
		Index:      idx,
		Total:      session.Len(),
		Text:       q.Prompt,
		Difficulty: q.Difficulty,
		Resumed:    session.Resumed(),
		Comment:    session.TakeCommentSlot(rand.Float64()),
	}
}

// finish closes the session, persists the attempt best-effort and
// returns the summary. A failed save is logged, never shown as a
// failure: the user still gets the result.
func (d *DrillS) finish(ctx context.Context, userID int64, session *quiz.Session) models.TurnResult {
	record := session.Result(d.now())
	d.sessions.Delete(userID)

	if err := d.repo.AddAttempt(ctx, userID, record); err != nil {
		d.log.Error("failed to persist attempt", zap.Int64("user_id", userID), zap.Error(err))
	}

	return models.TurnResult{
		Summary: &models.AttemptSummary{
			Correct: record.Correct,
			Total:   session.Len(),
			Elapsed: record.Elapsed,
			Missed:  session.Missed(),
		},
	}
}
