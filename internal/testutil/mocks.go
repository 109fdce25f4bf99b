package testutil

import (
	"context"

	"phrasebot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockTrainerClient is a mock for service.TrainerClient
type MockTrainerClient struct {
	mock.Mock
}

func (m *MockTrainerClient) SearchItems(ctx context.Context, search string, page, limit int) (*domain.ItemPage, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemPage), args.Error(1)
}

func (m *MockTrainerClient) CreateItem(ctx context.Context, draft domain.ItemDraft) (*domain.LanguageItem, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LanguageItem), args.Error(1)
}

func (m *MockTrainerClient) UpdateItem(ctx context.Context, id string, update domain.ItemUpdate) (*domain.LanguageItem, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LanguageItem), args.Error(1)
}

func (m *MockTrainerClient) DeleteItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTrainerClient) FetchGuessExercise(ctx context.Context) (*domain.GuessExercise, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuessExercise), args.Error(1)
}

func (m *MockTrainerClient) CheckGuessExercise(ctx context.Context, content, answer string) (*domain.GuessResult, error) {
	args := m.Called(ctx, content, answer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuessResult), args.Error(1)
}
