package models

import "fmt"

type Operator string

const (
	OpMultiply Operator = "×"
	OpDivide   Operator = "÷"
)

type Difficulty string

const (
	DifficultySimple Difficulty = "simple"
	DifficultyHard   Difficulty = "hard"
	DifficultyNormal Difficulty = "normal"
)

type Fact struct {
	A  int
	Op Operator
	B  int
}

func (f Fact) Answer() int {
	if f.Op == OpDivide {
		return f.A / f.B
	}
	return f.A * f.B
}

func (f Fact) Prompt() string {
	return fmt.Sprintf("%d %s %d", f.A, f.Op, f.B)
}

type Question struct {
	Fact       Fact
	Prompt     string
	Answer     int
	Difficulty Difficulty
}
