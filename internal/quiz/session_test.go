package quiz

import (
	"testing"
	"time"

	"github.com/sheav-web/-math-bot-telegram-two/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionQuestions(n int) []models.Question {
	questions := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		f := models.Fact{A: i + 1, Op: models.OpMultiply, B: 2}
		questions = append(questions, models.Question{
			Fact:       f,
			Prompt:     f.Prompt(),
			Answer:     f.Answer(),
			Difficulty: Classify(f),
		})
	}
	return questions
}

func TestSession_AllCorrect(t *testing.T) {
	t.Parallel()

	s := NewSession(sessionQuestions(QuestionCount))
	s.startedAt = time.Now().Add(-42 * time.Second)

	var adv Advance
	for i := 0; i < QuestionCount; i++ {
		q, idx := s.Current()
		assert.Equal(t, i, idx)
		assert.False(t, s.Resumed())
		adv = s.Submit(q.Answer)
	}

	require.True(t, adv.Done)

	record := s.Result(time.Now())
	assert.Equal(t, QuestionCount, record.Correct)
	assert.Equal(t, 42, record.Elapsed)
	assert.Empty(t, record.Missed)
}

func TestSession_MissedRecorded(t *testing.T) {
	t.Parallel()

	s := NewSession(sessionQuestions(3))

	q, _ := s.Current()
	s.Submit(q.Answer + 1) // wrong
	missedPrompt := q.Prompt

	q, _ = s.Current()
	s.Submit(q.Answer)

	q, _ = s.Current()
	adv := s.Submit(q.Answer + 5) // wrong

	require.True(t, adv.Done)

	record := s.Result(time.Now())
	assert.Equal(t, 1, record.Correct)
	require.Len(t, record.Missed, 2)
	assert.Equal(t, missedPrompt, record.Missed[0])
}

func TestSession_SkipReplayedBeforeCompletion(t *testing.T) {
	t.Parallel()

	s := NewSession(sessionQuestions(QuestionCount))

	presented := make(map[int]int)

	for {
		q, idx := s.Current()
		presented[idx]++

		var adv Advance
		if idx == 5 && presented[5] == 1 {
			assert.False(t, s.Resumed())
			adv = s.Skip()
		} else {
			if idx == 5 {
				assert.True(t, s.Resumed(), "replayed question must be flagged")
			}
			adv = s.Submit(q.Answer)
		}

		if adv.Done {
			break
		}
	}

	assert.Equal(t, 2, presented[5], "skipped question presented exactly twice")
	for i := 0; i < QuestionCount; i++ {
		if i != 5 {
			assert.Equal(t, 1, presented[i])
		}
	}

	record := s.Result(time.Now())
	assert.Equal(t, QuestionCount, record.Correct)
}

func TestSession_SkipAloneNeverCompletes(t *testing.T) {
	t.Parallel()

	s := NewSession(sessionQuestions(4))

	// Two full passes of skipping: the session must keep replaying.
	for i := 0; i < 8; i++ {
		adv := s.Skip()
		require.False(t, adv.Done, "skip-only interaction reached completion")
	}

	// Answering everything, replays included, finishes it.
	var adv Advance
	for i := 0; i < 4; i++ {
		q, _ := s.Current()
		adv = s.Submit(q.Answer)
	}
	assert.True(t, adv.Done)
}

func TestSession_ReskipGoesToQueueTail(t *testing.T) {
	t.Parallel()

	s := NewSession(sessionQuestions(3))

	adv := s.Skip() // defer 0
	assert.Equal(t, 1, adv.Next)

	q, _ := s.Current()
	s.Submit(q.Answer) // answer 1

	q, _ = s.Current()
	adv = s.Submit(q.Answer) // answer 2, queue pops 0
	require.Equal(t, 0, adv.Next)
	require.True(t, adv.Resumed)

	adv = s.Skip() // re-skip 0, back to queue tail
	require.False(t, adv.Done)
	require.Equal(t, 0, adv.Next)
	assert.True(t, adv.Resumed)

	q, _ = s.Current()
	adv = s.Submit(q.Answer)
	assert.True(t, adv.Done)
}

func TestSession_TakeCommentSlot(t *testing.T) {
	t.Parallel()

	s := NewSession(sessionQuestions(QuestionCount))

	assert.False(t, s.TakeCommentSlot(0.9), "roll above threshold never comments")

	granted := 0
	for i := 0; i < QuestionCount; i++ {
		if s.TakeCommentSlot(0.1) {
			granted++
		}
	}
	assert.Equal(t, 7, granted, "comments capped per attempt")
}
