package quiz

import (
	"math/rand"

	"github.com/sheav-web/-math-bot-telegram-two/internal/models"
)

const (
	QuestionCount = 20
	simpleCount   = 3
	hardCount     = 10
)

type pairKey struct {
	lo, hi int
}

// Generate builds the question set for one attempt: 55 unique unordered
// operand pairs over [1,10], each yielding a multiplication fact and its
// companion division fact, bucketed by difficulty and sampled as
// 3 simple + 10 hard + 7 normal, in shuffled order.
func Generate() []models.Question {
	seen := make(map[pairKey]struct{})
	buckets := map[models.Difficulty][]models.Fact{}

	for a := 1; a <= 10; a++ {
		for b := 1; b <= 10; b++ {
			key := pairKey{lo: min(a, b), hi: max(a, b)}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			mul := models.Fact{A: a, Op: models.OpMultiply, B: b}
			buckets[Classify(mul)] = append(buckets[Classify(mul)], mul)

			div := models.Fact{A: a * b, Op: models.OpDivide, B: b}
			buckets[Classify(div)] = append(buckets[Classify(div)], div)
		}
	}

	for _, facts := range buckets {
		rand.Shuffle(len(facts), func(i, j int) {
			facts[i], facts[j] = facts[j], facts[i]
		})
	}

	selected := make([]models.Fact, 0, QuestionCount)
	selected = append(selected, buckets[models.DifficultySimple][:simpleCount]...)
	selected = append(selected, buckets[models.DifficultyHard][:hardCount]...)
	selected = append(selected, buckets[models.DifficultyNormal][:QuestionCount-len(selected)]...)

	rand.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})

	questions := make([]models.Question, 0, QuestionCount)
	for _, f := range selected {
		questions = append(questions, models.Question{
			Fact:       f,
			Prompt:     f.Prompt(),
			Answer:     f.Answer(),
			Difficulty: Classify(f),
		})
	}

	return questions
}
