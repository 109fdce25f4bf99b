package service

import (
	"context"
	"errors"
	"testing"

	"phrasebot/internal/domain"
	"phrasebot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func page(items []domain.LanguageItem, total, limit, pageNum int) *domain.ItemPage {
	p := &domain.ItemPage{Items: items, Total: total}
	if len(items) == limit {
		next := pageNum + 1
		p.NextPage = &next
	}
	return p
}

func TestItems_BuffersFirstPage(t *testing.T) {
	client := new(testutil.MockTrainerClient)
	svc := NewItemService(client, 2, testutil.NewTestLogger())

	loaded := testutil.NewTestItems(2)
	client.On("SearchItems", mock.Anything, "", 1, 2).
		Return(page(loaded, 5, 2, 1), nil).Once()

	items, total, err := svc.Items(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, loaded, items)
	assert.Equal(t, 5, total)
	assert.True(t, svc.HasMore(""))

	// Second read is served from the buffer, no extra fetch
	items, _, err = svc.Items(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, loaded, items)

	client.AssertExpectations(t)
}

func TestItems_EmptyResultIsNotAnError(t *testing.T) {
	client := new(testutil.MockTrainerClient)
	svc := NewItemService(client, 10, testutil.NewTestLogger())

	client.On("SearchItems", mock.Anything, "zzz", 1, 10).
		Return(page(nil, 0, 10, 1), nil).Once()

	items, total, err := svc.Items(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 0, total)
	assert.False(t, svc.HasMore("zzz"))
}

func TestLoadMore_AppendsUntilShortPage(t *testing.T) {
	client := new(testutil.MockTrainerClient)
	svc := NewItemService(client, 2, testutil.NewTestLogger())

	all := testutil.NewTestItems(3)
	client.On("SearchItems", mock.Anything, "", 1, 2).
		Return(page(all[:2], 3, 2, 1), nil).Once()
	client.On("SearchItems", mock.Anything, "", 2, 2).
		Return(page(all[2:], 3, 2, 2), nil).Once()

	_, _, err := svc.Items(context.Background(), "")
	require.NoError(t, err)
	require.True(t, svc.HasMore(""))

	require.NoError(t, svc.LoadMore(context.Background(), ""))

	items, total, err := svc.Items(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, all, items)
	assert.Equal(t, 3, total)
	// The short second page ended pagination
	assert.False(t, svc.HasMore(""))

	// Further LoadMore calls are no-ops
	require.NoError(t, svc.LoadMore(context.Background(), ""))
	client.AssertExpectations(t)
}

func TestCreate_InvalidatesBufferedSearches(t *testing.T) {
	client := new(testutil.MockTrainerClient)
	svc := NewItemService(client, 10, testutil.NewTestLogger())

	before := testutil.NewTestItems(1)
	created := testutil.NewTestItem("id-new", "fresh", "свіжий")
	after := append(append([]domain.LanguageItem(nil), before...), created)

	client.On("SearchItems", mock.Anything, "", 1, 10).
		Return(page(before, 1, 10, 1), nil).Once()

	_, _, err := svc.Items(context.Background(), "")
	require.NoError(t, err)

	draft := domain.ItemDraft{
		Content: "fresh", Translation: "свіжий",
		ItemType:       domain.ItemTypeWord,
		SourceLanguage: domain.LanguageEnglish,
		TargetLanguage: domain.LanguageUkrainian,
	}
	client.On("CreateItem", mock.Anything, draft).Return(&created, nil).Once()
	client.On("SearchItems", mock.Anything, "", 1, 10).
		Return(page(after, 2, 10, 1), nil).Once()

	_, err = svc.Create(context.Background(), draft)
	require.NoError(t, err)

	// The read after the successful write observes the change
	items, total, err := svc.Items(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, after, items)
	assert.Equal(t, 2, total)

	client.AssertExpectations(t)
}

func TestDelete_InvalidatesBufferedSearches(t *testing.T) {
	client := new(testutil.MockTrainerClient)
	svc := NewItemService(client, 10, testutil.NewTestLogger())

	before := testutil.NewTestItems(2)
	client.On("SearchItems", mock.Anything, "", 1, 10).
		Return(page(before, 2, 10, 1), nil).Once()

	_, _, err := svc.Items(context.Background(), "")
	require.NoError(t, err)

	client.On("DeleteItem", mock.Anything, "id-0").Return(nil).Once()
	client.On("SearchItems", mock.Anything, "", 1, 10).
		Return(page(before[1:], 1, 10, 1), nil).Once()

	require.NoError(t, svc.Delete(context.Background(), "id-0"))

	items, _, err := svc.Items(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, before[1:], items)

	client.AssertExpectations(t)
}

func TestLoadMore_SupersededByWriteIsDropped(t *testing.T) {
	client := new(testutil.MockTrainerClient)
	svc := NewItemService(client, 2, testutil.NewTestLogger())

	all := testutil.NewTestItems(4)
	client.On("SearchItems", mock.Anything, "", 1, 2).
		Return(page(all[:2], 4, 2, 1), nil).Once()

	_, _, err := svc.Items(context.Background(), "")
	require.NoError(t, err)

	// A delete lands while the second page is in flight
	client.On("DeleteItem", mock.Anything, "id-3").Return(nil).Once()
	client.On("SearchItems", mock.Anything, "", 2, 2).
		Run(func(mock.Arguments) {
			require.NoError(t, svc.Delete(context.Background(), "id-3"))
		}).
		Return(page(all[2:], 4, 2, 2), nil).Once()

	require.NoError(t, svc.LoadMore(context.Background(), ""))

	// The stale appended page is discarded: the next read refetches from
	// the first page and serves server truth, not the pre-delete sequence
	client.On("SearchItems", mock.Anything, "", 1, 2).
		Return(page(all[:2], 3, 2, 1), nil).Once()

	items, total, err := svc.Items(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, all[:2], items)
	assert.Equal(t, 3, total)

	client.AssertExpectations(t)
}

func TestFailedMutationLeavesBuffersUntouched(t *testing.T) {
	client := new(testutil.MockTrainerClient)
	svc := NewItemService(client, 10, testutil.NewTestLogger())

	loaded := testutil.NewTestItems(2)
	// One fetch only: the failed delete must not trigger a refetch
	client.On("SearchItems", mock.Anything, "", 1, 10).
		Return(page(loaded, 2, 10, 1), nil).Once()

	_, _, err := svc.Items(context.Background(), "")
	require.NoError(t, err)

	client.On("DeleteItem", mock.Anything, "id-0").
		Return(errors.New("backend down")).Once()

	assert.Error(t, svc.Delete(context.Background(), "id-0"))

	items, _, err := svc.Items(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, loaded, items)

	client.AssertExpectations(t)
}

func TestItems_SearchTextsAreIsolated(t *testing.T) {
	client := new(testutil.MockTrainerClient)
	svc := NewItemService(client, 10, testutil.NewTestLogger())

	catItems := []domain.LanguageItem{testutil.NewTestItem("c1", "cat", "кіт")}
	dogItems := []domain.LanguageItem{testutil.NewTestItem("d1", "dog", "пес")}

	client.On("SearchItems", mock.Anything, "cat", 1, 10).
		Return(page(catItems, 1, 10, 1), nil).Once()
	client.On("SearchItems", mock.Anything, "dog", 1, 10).
		Return(page(dogItems, 1, 10, 1), nil).Once()

	items, _, err := svc.Items(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, catItems, items)

	items, _, err = svc.Items(context.Background(), "dog")
	require.NoError(t, err)
	assert.Equal(t, dogItems, items)

	// Switching back serves the buffer
	items, _, err = svc.Items(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, catItems, items)

	client.AssertExpectations(t)
}

func TestUpdate_PropagatesClientError(t *testing.T) {
	client := new(testutil.MockTrainerClient)
	svc := NewItemService(client, 10, testutil.NewTestLogger())

	client.On("UpdateItem", mock.Anything, "id-0", mock.Anything).
		Return(nil, errors.New("not found")).Once()

	_, err := svc.Update(context.Background(), "id-0", domain.ItemUpdate{})
	assert.Error(t, err)
}
