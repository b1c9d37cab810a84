package quiz

import (
	"time"

	"github.com/sheav-web/-math-bot-telegram-two/internal/models"
)

const commentLimit = 7

// Session is the state of one in-flight attempt. Constructed only via
// NewSession; one per user at a time.
type Session struct {
	questions    []models.Question
	current      int
	answered     map[int]struct{}
	skipped      []int
	correct      int
	missed       []string
	resumed      bool
	startedAt    time.Time
	commentsUsed int
}

// Advance is the outcome of applying Submit or Skip.
type Advance struct {
	Done    bool
	Next    int
	Resumed bool
}

func NewSession(questions []models.Question) *Session {
	return &Session{
		questions: questions,
		answered:  make(map[int]struct{}),
		startedAt: time.Now(),
	}
}

func (s *Session) Current() (models.Question, int) {
	return s.questions[s.current], s.current
}

// Resumed reports whether the current question was replayed from the
// skip queue.
func (s *Session) Resumed() bool {
	return s.resumed
}

func (s *Session) Len() int {
	return len(s.questions)
}

// Submit checks the answer against the current question, records the
// miss on mismatch, marks the index answered and advances.
func (s *Session) Submit(answer int) Advance {
	q := s.questions[s.current]
	if answer == q.Answer {
		s.correct++
	} else {
		s.missed = append(s.missed, q.Prompt)
	}
	s.answered[s.current] = struct{}{}
	return s.advance()
}

// Skip defers the current question to the tail of the skip queue. A
// replayed question may be skipped again.
func (s *Session) Skip() Advance {
	s.skipped = append(s.skipped, s.current)
	return s.advance()
}

// advance moves to the next sequential unanswered index, then drains
// the skip queue in FIFO order. Done only once every index is answered.
func (s *Session) advance() Advance {
	next := s.current + 1
	if next < len(s.questions) {
		if _, ok := s.answered[next]; !ok {
			s.current = next
			s.resumed = false
			return Advance{Next: next}
		}
	}

	// A queued index may have been answered already when a replayed
	// question was re-skipped: drop those instead of replaying them.
	for len(s.skipped) > 0 {
		idx := s.skipped[0]
		s.skipped = s.skipped[1:]
		if _, ok := s.answered[idx]; ok {
			continue
		}
		s.current = idx
		s.resumed = true
		return Advance{Next: idx, Resumed: true}
	}

	return Advance{Done: true}
}

// TakeCommentSlot decides whether a flavor comment accompanies the next
// question: at most commentLimit per attempt, roughly every other time.
// roll is a uniform sample from [0,1).
func (s *Session) TakeCommentSlot(roll float64) bool {
	if s.commentsUsed >= commentLimit || roll >= 0.5 {
		return false
	}
	s.commentsUsed++
	return true
}

// Missed resolves the missed prompts back to their expected answers
// for the completion report.
func (s *Session) Missed() []models.MissedQuestion {
	answers := make(map[string]int, len(s.questions))
	for _, q := range s.questions {
		answers[q.Prompt] = q.Answer
	}

	missed := make([]models.MissedQuestion, 0, len(s.missed))
	for _, prompt := range s.missed {
		missed = append(missed, models.MissedQuestion{Prompt: prompt, Answer: answers[prompt]})
	}
	return missed
}

// Result builds the attempt record once the session is done.
func (s *Session) Result(now time.Time) models.AttemptRecord {
	return models.AttemptRecord{
		Correct: s.correct,
		Elapsed: int(now.Sub(s.startedAt).Round(time.Second).Seconds()),
		Date:    now,
		Missed:  append([]string(nil), s.missed...),
	}
}
