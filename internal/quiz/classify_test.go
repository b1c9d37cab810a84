package quiz

import (
	"testing"

	"github.com/sheav-web/-math-bot-telegram-two/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Total(t *testing.T) {
	t.Parallel()

	known := map[models.Difficulty]bool{
		models.DifficultySimple: true,
		models.DifficultyHard:   true,
		models.DifficultyNormal: true,
	}

	for a := 1; a <= 10; a++ {
		for b := 1; b <= 10; b++ {
			mul := models.Fact{A: a, Op: models.OpMultiply, B: b}
			require.True(t, known[Classify(mul)], "unexpected bucket for %s", mul.Prompt())

			div := models.Fact{A: a * b, Op: models.OpDivide, B: b}
			require.True(t, known[Classify(div)], "unexpected bucket for %s", div.Prompt())
		}
	}
}

func TestClassify_SimpleBeatsHard(t *testing.T) {
	t.Parallel()

	for a := 1; a <= 10; a++ {
		for b := 1; b <= 10; b++ {
			facts := []models.Fact{
				{A: a, Op: models.OpMultiply, B: b},
				{A: a * b, Op: models.OpDivide, B: b},
			}
			for _, f := range facts {
				if isSimple(f) && isHard(f) {
					assert.Equal(t, models.DifficultySimple, Classify(f), "precedence broken for %s", f.Prompt())
				}
			}
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fact models.Fact
		want models.Difficulty
	}{
		{
			name: "multiply by one is simple",
			fact: models.Fact{A: 1, Op: models.OpMultiply, B: 7},
			want: models.DifficultySimple,
		},
		{
			name: "multiply by ten is simple",
			fact: models.Fact{A: 10, Op: models.OpMultiply, B: 6},
			want: models.DifficultySimple,
		},
		{
			name: "both operands in 6..9 is hard",
			fact: models.Fact{A: 7, Op: models.OpMultiply, B: 8},
			want: models.DifficultyHard,
		},
		{
			name: "three by four is normal",
			fact: models.Fact{A: 3, Op: models.OpMultiply, B: 4},
			want: models.DifficultyNormal,
		},
		{
			name: "divide by two is simple",
			fact: models.Fact{A: 8, Op: models.OpDivide, B: 2},
			want: models.DifficultySimple,
		},
		{
			name: "dividend equals divisor is simple",
			fact: models.Fact{A: 7, Op: models.OpDivide, B: 7},
			want: models.DifficultySimple,
		},
		{
			name: "divisor and quotient in 6..9 is hard",
			fact: models.Fact{A: 56, Op: models.OpDivide, B: 8},
			want: models.DifficultyHard,
		},
		{
			name: "divide with small quotient is normal",
			fact: models.Fact{A: 15, Op: models.OpDivide, B: 5},
			want: models.DifficultyNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Classify(tt.fact))
		})
	}
}
