package domain

import "fmt"

// ItemType classifies a language item
type ItemType string

const (
	ItemTypeWord        ItemType = "word"
	ItemTypePhrasalVerb ItemType = "phrasal_verb"
	ItemTypeIdiom       ItemType = "idiom"
	ItemTypePhrase      ItemType = "phrase"
)

// Valid reports whether the item type is one of the known kinds
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeWord, ItemTypePhrasalVerb, ItemTypeIdiom, ItemTypePhrase:
		return true
	}
	return false
}

// Language is a supported language code
type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageUkrainian Language = "uk"
)

// Valid reports whether the language code is supported
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageUkrainian
}

// LanguageItem is a vocabulary entry: a word, phrasal verb, idiom or phrase
// with its translation. The ID is assigned by the backend.
type LanguageItem struct {
	ID             string   `json:"id"`
	Content        string   `json:"content"`
	Translation    string   `json:"translation"`
	Example        string   `json:"example,omitempty"`
	ItemType       ItemType `json:"itemType"`
	SourceLanguage Language `json:"sourceLanguage"`
	TargetLanguage Language `json:"targetLanguage"`
}

// Validate checks the invariants a trusted item must hold. Content and
// translation are mandatory, example is not.
func (i *LanguageItem) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidItem)
	}
	if i.Content == "" {
		return fmt.Errorf("%w: missing content", ErrInvalidItem)
	}
	if i.Translation == "" {
		return fmt.Errorf("%w: missing translation", ErrInvalidItem)
	}
	if !i.ItemType.Valid() {
		return fmt.Errorf("%w: unknown item type %q", ErrInvalidItem, i.ItemType)
	}
	if !i.SourceLanguage.Valid() {
		return fmt.Errorf("%w: unknown source language %q", ErrInvalidItem, i.SourceLanguage)
	}
	if !i.TargetLanguage.Valid() {
		return fmt.Errorf("%w: unknown target language %q", ErrInvalidItem, i.TargetLanguage)
	}
	return nil
}

// ItemDraft is the payload for creating an item. Same fields as
// LanguageItem minus the server-assigned ID.
type ItemDraft struct {
	Content        string   `json:"content"`
	Translation    string   `json:"translation"`
	Example        string   `json:"example,omitempty"`
	ItemType       ItemType `json:"itemType"`
	SourceLanguage Language `json:"sourceLanguage"`
	TargetLanguage Language `json:"targetLanguage"`
}

// Validate checks a draft before it is sent to the backend
func (d *ItemDraft) Validate() error {
	if d.Content == "" || d.Translation == "" {
		return fmt.Errorf("%w: content and translation are required", ErrInvalidItem)
	}
	if !d.ItemType.Valid() {
		return fmt.Errorf("%w: unknown item type %q", ErrInvalidItem, d.ItemType)
	}
	if !d.SourceLanguage.Valid() || !d.TargetLanguage.Valid() {
		return fmt.Errorf("%w: unknown language code", ErrInvalidItem)
	}
	return nil
}

// ItemUpdate is a partial modification payload. Nil fields are left
// untouched by the backend. The item ID is never part of the payload.
type ItemUpdate struct {
	Content        *string   `json:"content,omitempty"`
	Translation    *string   `json:"translation,omitempty"`
	Example        *string   `json:"example,omitempty"`
	ItemType       *ItemType `json:"itemType,omitempty"`
	SourceLanguage *Language `json:"sourceLanguage,omitempty"`
	TargetLanguage *Language `json:"targetLanguage,omitempty"`
}

// Empty reports whether the update changes nothing
func (u *ItemUpdate) Empty() bool {
	return u.Content == nil && u.Translation == nil && u.Example == nil &&
		u.ItemType == nil && u.SourceLanguage == nil && u.TargetLanguage == nil
}

// ItemPage is one page of a paginated item search.
//
// NextPage is set only when the page came back full-sized; a short page is
// the backend's sole end-of-list signal, so a short non-final page would end
// pagination early.
type ItemPage struct {
	Items    []LanguageItem
	Total    int
	NextPage *int
}

// HasMore reports whether another page may exist
func (p *ItemPage) HasMore() bool {
	return p.NextPage != nil
}
