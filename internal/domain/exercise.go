package domain

import "fmt"

// GuessExercise is one multiple-choice question: a prompt in the source
// language and candidate translations (the correct one plus distractors).
// Exercises are requested fresh per question and never cached.
type GuessExercise struct {
	TestItem string   `json:"testItem"`
	Options  []string `json:"options"`
}

// Validate checks the shape of a fetched exercise
func (e *GuessExercise) Validate() error {
	if e.TestItem == "" {
		return fmt.Errorf("%w: missing test item", ErrInvalidExercise)
	}
	if len(e.Options) == 0 {
		return fmt.Errorf("%w: no answer options", ErrInvalidExercise)
	}
	for _, opt := range e.Options {
		if opt == "" {
			return fmt.Errorf("%w: empty answer option", ErrInvalidExercise)
		}
	}
	return nil
}

// GuessAnswer is the payload for checking a chosen answer
type GuessAnswer struct {
	Content string `json:"content"`
	Answer  string `json:"answer"`
}

// GuessResult is the backend's verdict on a submitted answer
type GuessResult struct {
	OK            bool   `json:"ok"`
	CorrectAnswer string `json:"correctAnswer"`
}

// Validate checks the shape of a check response
func (r *GuessResult) Validate() error {
	if r.CorrectAnswer == "" {
		return fmt.Errorf("%w: missing correct answer", ErrInvalidExercise)
	}
	return nil
}
