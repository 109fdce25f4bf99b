package service

import (
	"context"

	"phrasebot/internal/domain"
)

// TrainerClient defines the backend operations the services depend on
type TrainerClient interface {
	SearchItems(ctx context.Context, search string, page, limit int) (*domain.ItemPage, error)
	CreateItem(ctx context.Context, draft domain.ItemDraft) (*domain.LanguageItem, error)
	UpdateItem(ctx context.Context, id string, update domain.ItemUpdate) (*domain.LanguageItem, error)
	DeleteItem(ctx context.Context, id string) error
	FetchGuessExercise(ctx context.Context) (*domain.GuessExercise, error)
	CheckGuessExercise(ctx context.Context, content, answer string) (*domain.GuessResult, error)
}
