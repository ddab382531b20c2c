package config

import "fmt"

// DifficultyPreset scales a level's move budget and objective counts.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty accepts a preset name; the empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", s)
}

// Apply returns a copy of l adjusted for the preset. Easy grants half as many
// moves again; hard takes a quarter of the moves away and asks for a quarter
// more of every objective. Counts never drop below 1.
func (p DifficultyPreset) Apply(l Level) Level {
	l.Objectives = append(l.Objectives[:0:0], l.Objectives...)
	switch p {
	case DifficultyEasy:
		l.Moves += (l.Moves + 1) / 2
	case DifficultyHard:
		l.Moves = max(l.Moves-l.Moves/4, 1)
		for i := range l.Objectives {
			l.Objectives[i].Remaining += (l.Objectives[i].Remaining + 3) / 4
		}
	}
	return l
}
