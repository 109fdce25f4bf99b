package service

import (
	"context"

	"phrasebot/internal/domain"

	"go.uber.org/zap"
)

// ExerciseService hands out guess exercises. Exercises are ephemeral and
// never cached, so this is an uncached passthrough over the client.
type ExerciseService struct {
	client TrainerClient
	logger *zap.Logger
}

// NewExerciseService creates a new exercise service
func NewExerciseService(client TrainerClient, logger *zap.Logger) *ExerciseService {
	return &ExerciseService{
		client: client,
		logger: logger,
	}
}

// Fetch requests a fresh question from the backend
func (s *ExerciseService) Fetch(ctx context.Context) (*domain.GuessExercise, error) {
	return s.client.FetchGuessExercise(ctx)
}

// Check submits the chosen answer for the given prompt
func (s *ExerciseService) Check(ctx context.Context, content, answer string) (*domain.GuessResult, error) {
	result, err := s.client.CheckGuessExercise(ctx, content, answer)
	if err != nil {
		s.logger.Error("Failed to check exercise answer",
			zap.String("content", content),
			zap.Error(err),
		)
		return nil, err
	}
	return result, nil
}
