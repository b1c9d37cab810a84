package models

import "errors"

var (
	ErrNotANumber      = errors.New("answer is not a number")
	ErrNoActiveSession = errors.New("no active session")
	ErrNoAttempts      = errors.New("no attempts yet")
	ErrNoAttemptsToday = errors.New("no attempts today")
)
