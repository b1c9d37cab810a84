package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/sheav-web/-math-bot-telegram-two/internal/models"
	"go.uber.org/zap"
)

// FileStore keeps every user's profile in a single JSON file, loaded
// and written whole on each mutation. The mutex serializes writers so
// two finishing attempts cannot lose each other's update.
type FileStore struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
}

func NewFileStore(path string, log *zap.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

type storedAttempt struct {
	Correct int      `json:"correct"`
	Time    int      `json:"time"`
	Date    string   `json:"date,omitempty"`
	Errors  []string `json:"errors"`
}

type storedProfile struct {
	Attempts   []storedAttempt `json:"attempts"`
	BestTime   *int            `json:"best_time,omitempty"`
	WorstTime  int             `json:"worst_time"`
	TotalTests int             `json:"total_tests"`
}

func (s *FileStore) AddAttempt(_ context.Context, userID int64, attempt models.AttemptRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	key := strconv.FormatInt(userID, 10)

	profile, ok := data[key]
	if !ok {
		profile = &storedProfile{Attempts: []storedAttempt{}}
		data[key] = profile
	}

	profile.Attempts = append(profile.Attempts, storedAttempt{
		Correct: attempt.Correct,
		Time:    attempt.Elapsed,
		Date:    attempt.Date.Format(models.AttemptDateLayout),
		Errors:  append([]string{}, attempt.Missed...),
	})
	profile.TotalTests++
	if profile.BestTime == nil || attempt.Elapsed < *profile.BestTime {
		best := attempt.Elapsed
		profile.BestTime = &best
	}
	if attempt.Elapsed > profile.WorstTime {
		profile.WorstTime = attempt.Elapsed
	}

	return s.save(data)
}

func (s *FileStore) Attempts(_ context.Context, userID int64) ([]models.AttemptRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.load()[strconv.FormatInt(userID, 10)]
	if !ok {
		return nil, nil
	}

	attempts := make([]models.AttemptRecord, 0, len(profile.Attempts))
	for _, a := range profile.Attempts {
		attempts = append(attempts, models.AttemptRecord{
			Correct: a.Correct,
			Elapsed: a.Time,
			Date:    parseAttemptDate(a.Date),
			Missed:  a.Errors,
		})
	}

	return attempts, nil
}

// load reads the whole store. A missing or unreadable file is an empty
// store, never an error; attempts without a date get the legacy stamp.
func (s *FileStore) load() map[string]*storedProfile {
	data := make(map[string]*storedProfile)

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("failed to read store, starting empty", zap.String("path", s.path), zap.Error(err))
		}
		return data
	}

	if err := json.Unmarshal(raw, &data); err != nil {
		s.log.Warn("corrupt store, starting empty", zap.String("path", s.path), zap.Error(err))
		return make(map[string]*storedProfile)
	}

	for _, profile := range data {
		for i := range profile.Attempts {
			if profile.Attempts[i].Date == "" {
				profile.Attempts[i].Date = models.LegacyAttemptDate.Format(models.AttemptDateLayout)
			}
		}
	}

	return data
}

func (s *FileStore) save(data map[string]*storedProfile) error {
	raw, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}

	return nil
}

func parseAttemptDate(raw string) time.Time {
	date, err := time.ParseInLocation(models.AttemptDateLayout, raw, time.Local)
	if err != nil {
		return models.LegacyAttemptDate
	}
	return date
}
