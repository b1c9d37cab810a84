package models

import "time"

const AttemptDateLayout = "2006-01-02 15:04"

// LegacyAttemptDate is assigned at load time to stored attempts that
// predate date tracking, so they stay out of recency windows.
var LegacyAttemptDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type AttemptRecord struct {
	Correct int       `db:"correct"`
	Elapsed int       `db:"elapsed_sec"`
	Date    time.Time `db:"completed_at"`
	Missed  []string  `db:"-"`
}

type UserProfile struct {
	Attempts   []AttemptRecord
	BestTime   int // 0 while no attempts recorded
	WorstTime  int
	TotalTests int
}

type AttemptSummary struct {
	Correct int
	Total   int
	Elapsed int
	Missed  []MissedQuestion
}

type MissedQuestion struct {
	Prompt string
	Answer int
}

// Prompt is what the transport layer renders for one question turn.
type Prompt struct {
	Index      int
	Total      int
	Text       string
	Difficulty Difficulty
	Resumed    bool
	Comment    bool
}

// TurnResult carries either the next prompt or, on the final answer,
// the attempt summary.
type TurnResult struct {
	Prompt  *Prompt
	Summary *AttemptSummary
}
