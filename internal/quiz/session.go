package quiz

import (
	"context"
	"errors"
	"sync"

	"phrasebot/internal/domain"

	"go.uber.org/zap"
)

// State is a quiz session phase
type State string

const (
	StateAwaitingQuestion State = "awaiting_question"
	StateAwaitingAnswer   State = "awaiting_answer"
	StateChecking         State = "checking"
	StateConfirmingClose  State = "confirming_close"
	StateFinished         State = "finished"
)

var (
	ErrNoSelection   = errors.New("no answer selected")
	ErrNotAnswerable = errors.New("session is not awaiting an answer")
	ErrBadOption     = errors.New("answer is not one of the options")
	ErrNoQuestion    = errors.New("no question loaded")
)

// ExerciseSource supplies questions and checks answers
type ExerciseSource interface {
	Fetch(ctx context.Context) (*domain.GuessExercise, error)
	Check(ctx context.Context, content, answer string) (*domain.GuessResult, error)
}

// Session is one fixed-size multiple-choice quiz run. A session fetches a
// fresh question per step, tracks the running score, and requires a close
// confirmation once the first answer has been submitted. All methods are
// safe for concurrent use; a submit while a check is in flight is rejected.
type Session struct {
	source ExerciseSource
	logger *zap.Logger
	size   int

	mu        sync.Mutex
	state     State
	prevState State
	step      int
	score     int
	question  *domain.GuessExercise
	selection string
	loadErr   error
}

// NewSession creates a session of the given size. The first question is
// not fetched until LoadQuestion is called.
func NewSession(source ExerciseSource, size int, logger *zap.Logger) *Session {
	return &Session{
		source: source,
		logger: logger,
		size:   size,
		state:  StateAwaitingQuestion,
	}
}

// LoadQuestion fetches the next question. On failure the error is kept so
// the UI can surface it in place of the question text; the session cannot
// proceed without a loaded question.
func (s *Session) LoadQuestion(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateAwaitingQuestion {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	exercise, err := s.source.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.loadErr = err
		return err
	}
	s.question = exercise
	s.loadErr = nil
	s.selection = ""
	s.state = StateAwaitingAnswer
	return nil
}

// Select marks one candidate answer as current. The selection is
// replaceable until the answer is submitted.
func (s *Session) Select(option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAwaitingAnswer {
		return ErrNotAnswerable
	}
	if s.question == nil {
		return ErrNoQuestion
	}
	for _, opt := range s.question.Options {
		if opt == option {
			s.selection = option
			return nil
		}
	}
	return ErrBadOption
}

// Submit checks the current selection against the backend. A correct
// answer bumps the score. After the final question the session finishes;
// otherwise the next question is fetched and the selection cleared. A
// check failure leaves the session where it was: no advance, no partial
// credit, no silent skip.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateAwaitingAnswer {
		s.mu.Unlock()
		return ErrNotAnswerable
	}
	if s.selection == "" {
		s.mu.Unlock()
		return ErrNoSelection
	}
	content := s.question.TestItem
	answer := s.selection
	s.state = StateChecking
	s.mu.Unlock()

	result, err := s.source.Check(ctx, content, answer)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger.Error("Failed to check quiz answer", zap.Error(err))
		switch s.state {
		case StateChecking:
			s.state = StateAwaitingAnswer
		case StateConfirmingClose:
			s.prevState = StateAwaitingAnswer
		}
		return err
	}

	if result.OK {
		s.score++
	}
	s.step++

	next := StateAwaitingQuestion
	if s.step >= s.size {
		next = StateFinished
	} else {
		s.question = nil
		s.selection = ""
	}

	switch s.state {
	case StateChecking:
		s.state = next
	case StateConfirmingClose:
		// A close request landed while the check was in flight. The
		// prompt stays up; declining resumes where the check left off.
		s.prevState = next
	}
	return nil
}

// RequestClose asks to end the session. It reports whether a confirmation
// is required: closing mid-session after the first answered question must
// be confirmed, closing when finished or before any progress must not. An
// in-flight check counts as progress.
func (s *Session) RequestClose() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateFinished {
		return false
	}
	if s.step == 0 && s.state != StateChecking {
		return false
	}
	if s.state == StateConfirmingClose {
		return true
	}
	s.prevState = s.state
	s.state = StateConfirmingClose
	return true
}

// CancelClose returns from the confirmation prompt to the prior state
func (s *Session) CancelClose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateConfirmingClose {
		s.state = s.prevState
	}
}

// State returns the current phase
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Question returns the loaded question, or nil while none is loaded
func (s *Session) Question() *domain.GuessExercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.question
}

// Selection returns the currently selected answer, if any
func (s *Session) Selection() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// LoadError returns the last question-load failure, if any
func (s *Session) LoadError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Step returns the number of answered questions
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Score returns the number of correct answers so far
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Size returns the fixed number of questions per session
func (s *Session) Size() int {
	return s.size
}
