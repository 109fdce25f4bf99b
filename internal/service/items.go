package service

import (
	"context"
	"sync"

	"phrasebot/internal/domain"

	"go.uber.org/zap"
)

// ItemService wraps the REST client in a cached, paginated, mutation-aware
// read path. Loaded pages are kept per search text as an append-only
// buffer; every successful write bumps a version counter, and buffers
// created under an older version are discarded on the next read. Failed
// writes leave the buffers untouched, so what is shown still matches
// server truth. The cache is never patched optimistically.
type ItemService struct {
	client   TrainerClient
	pageSize int
	logger   *zap.Logger

	mu      sync.Mutex
	version uint64
	buffers map[string]*itemBuffer
}

// itemBuffer is the loaded sequence for one search text
type itemBuffer struct {
	version  uint64
	items    []domain.LanguageItem
	total    int
	nextPage *int
}

// NewItemService creates an item service with the given page size
func NewItemService(client TrainerClient, pageSize int, logger *zap.Logger) *ItemService {
	return &ItemService{
		client:   client,
		pageSize: pageSize,
		logger:   logger,
		buffers:  make(map[string]*itemBuffer),
	}
}

// Items returns the loaded sequence for the search text, fetching the
// first page when nothing current is buffered. An empty result is a valid
// answer ("no items found"), not an error.
func (s *ItemService) Items(ctx context.Context, search string) ([]domain.LanguageItem, int, error) {
	s.mu.Lock()
	v := s.version
	if buf, ok := s.buffers[search]; ok && buf.version == v {
		items := append([]domain.LanguageItem(nil), buf.items...)
		total := buf.total
		s.mu.Unlock()
		return items, total, nil
	}
	s.mu.Unlock()

	page, err := s.client.SearchItems(ctx, search, 1, s.pageSize)
	if err != nil {
		return nil, 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Stored under the version read before the fetch: if a write landed
	// in between, the next read discards this buffer and refetches.
	s.buffers[search] = &itemBuffer{
		version:  v,
		items:    page.Items,
		total:    page.Total,
		nextPage: page.NextPage,
	}
	return append([]domain.LanguageItem(nil), page.Items...), page.Total, nil
}

// LoadMore fetches the next page for the search text and appends it to the
// buffer. It is a no-op when no further page is expected. A buffer
// invalidated by a write is reloaded from the first page instead.
func (s *ItemService) LoadMore(ctx context.Context, search string) error {
	s.mu.Lock()
	buf, ok := s.buffers[search]
	if !ok || buf.version != s.version {
		s.mu.Unlock()
		_, _, err := s.Items(ctx, search)
		return err
	}
	if buf.nextPage == nil {
		s.mu.Unlock()
		return nil
	}
	v := buf.version
	next := *buf.nextPage
	s.mu.Unlock()

	page, err := s.client.SearchItems(ctx, search, next, s.pageSize)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	buf, ok = s.buffers[search]
	if !ok || buf.version != v || v != s.version {
		// Superseded by a write while fetching; the refetch protocol
		// takes over on the next read.
		return nil
	}
	buf.items = append(buf.items, page.Items...)
	buf.total = page.Total
	buf.nextPage = page.NextPage
	return nil
}

// HasMore reports whether another page may exist for the search text
func (s *ItemService) HasMore(search string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf, ok := s.buffers[search]
	return ok && buf.version == s.version && buf.nextPage != nil
}

// Create creates an item and invalidates all buffered searches on success
func (s *ItemService) Create(ctx context.Context, draft domain.ItemDraft) (*domain.LanguageItem, error) {
	item, err := s.client.CreateItem(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Language item created",
		zap.String("item_id", item.ID),
		zap.String("content", item.Content),
	)
	s.invalidate()
	return item, nil
}

// Update applies a partial update and invalidates all buffered searches
// on success
func (s *ItemService) Update(ctx context.Context, id string, update domain.ItemUpdate) (*domain.LanguageItem, error) {
	item, err := s.client.UpdateItem(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Language item updated", zap.String("item_id", id))
	s.invalidate()
	return item, nil
}

// Delete removes an item and invalidates all buffered searches on success
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteItem(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Language item deleted", zap.String("item_id", id))
	s.invalidate()
	return nil
}

func (s *ItemService) invalidate() {
	s.mu.Lock()
	s.version++
	s.mu.Unlock()
}
