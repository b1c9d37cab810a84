package quiz

import "github.com/sheav-web/-math-bot-telegram-two/internal/models"

func isSimple(f models.Fact) bool {
	if f.Op == models.OpMultiply {
		return f.A == 1 || f.B == 1 || f.A == 2 || f.B == 2 || f.A == 10 || f.B == 10
	}
	return f.B == 1 || f.B == 2 || f.B == 10 || (f.A == f.B && f.A != 0)
}

func isHard(f models.Fact) bool {
	if f.Op == models.OpMultiply {
		return 6 <= f.A && f.A <= 9 && 6 <= f.B && f.B <= 9
	}
	if f.B == 0 || f.A%f.B != 0 {
		return false
	}
	quotient := f.A / f.B
	return 6 <= f.B && f.B <= 9 && 6 <= quotient && quotient <= 9
}

// Classify buckets a fact for question selection and commentary.
// Simple wins over hard: the selection step counts on that order.
func Classify(f models.Fact) models.Difficulty {
	switch {
	case isSimple(f):
		return models.DifficultySimple
	case isHard(f):
		return models.DifficultyHard
	default:
		return models.DifficultyNormal
	}
}
