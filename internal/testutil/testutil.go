package testutil

import (
	"fmt"
	"time"

	"phrasebot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestItem creates a test language item
func NewTestItem(id, content, translation string) domain.LanguageItem {
	return domain.LanguageItem{
		ID:             id,
		Content:        content,
		Translation:    translation,
		ItemType:       domain.ItemTypeWord,
		SourceLanguage: domain.LanguageEnglish,
		TargetLanguage: domain.LanguageUkrainian,
	}
}

// NewTestItems creates n sequentially named test items
func NewTestItems(n int) []domain.LanguageItem {
	items := make([]domain.LanguageItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, NewTestItem(
			fmt.Sprintf("id-%d", i),
			fmt.Sprintf("word-%d", i),
			fmt.Sprintf("translation-%d", i),
		))
	}
	return items
}

// NewTestEvent creates a one-hour test calendar event
func NewTestEvent(id, title string, start time.Time) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:    id,
		Title: title,
		Start: start,
		End:   start.Add(time.Hour),
		Type:  domain.EventTypeEvent,
		Color: domain.ColorBlue,
	}
}
