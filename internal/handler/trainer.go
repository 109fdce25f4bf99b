package handler

import (
	"fmt"
	"strings"

	"phrasebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleTrainer opens the language trainer screen
func (h *Handler) handleTrainer(c tele.Context) error {
	return h.showTrainer(c, c.Sender().ID, true)
}

// sendTrainer renders the trainer screen as a new message
func (h *Handler) sendTrainer(c tele.Context, userID int64) error {
	return h.showTrainer(c, userID, false)
}

// showTrainer renders the item list for the user's current search text
func (h *Handler) showTrainer(c tele.Context, userID int64, edit bool) error {
	search := h.GetState(userID).Search

	items, total, err := h.itemService.Items(reqCtx(), search)
	if err != nil {
		h.logger.Error("Failed to load items", zap.Error(err))
		return h.reply(c, userID, edit, "Couldn't load your items. Try again later.", mainMenuMarkup())
	}

	text, markup := h.trainerView(search, items, total)
	return h.reply(c, userID, edit, text, markup)
}

// trainerView builds the trainer screen text and keyboard
func (h *Handler) trainerView(search string, items []domain.LanguageItem, total int) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	b.WriteString("📚 Language trainer\n")
	if search != "" {
		fmt.Fprintf(&b, "Search: %q\n", search)
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	if len(items) == 0 {
		// An empty first page is a valid answer, never an error
		b.WriteString("\nNo items found.")
	} else {
		fmt.Fprintf(&b, "Showing %d of %d\n", len(items), total)
		for _, item := range items {
			label := fmt.Sprintf("%s — %s", item.Content, item.Translation)
			rows = append(rows, markup.Row(markup.Data(label, "item_"+item.ID)))
		}
	}

	controls := markup.Row(btnSearch, btnAddItem)
	rows = append(rows, controls)
	if h.itemService.HasMore(search) {
		rows = append(rows, markup.Row(btnLoadMore))
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return b.String(), markup
}

// handleSearchPrompt asks for a new search text
func (h *Handler) handleSearchPrompt(c tele.Context) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	state.State = domain.StateWaitingSearch
	h.SetState(userID, state)

	if err := c.Edit("Send a search text (anything matching content or translation):", cancelMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send("Send a search text:", cancelMarkup())
	}
	return c.Respond()
}

// handleLoadMore appends the next page to the trainer list
func (h *Handler) handleLoadMore(c tele.Context) error {
	userID := c.Sender().ID
	search := h.GetState(userID).Search

	if err := h.itemService.LoadMore(reqCtx(), search); err != nil {
		h.logger.Error("Failed to load more items", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Couldn't load more items"})
	}
	return h.showTrainer(c, userID, true)
}

// handleAddItemStart begins the add-item dialog
func (h *Handler) handleAddItemStart(c tele.Context) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	state.State = domain.StateAddContent
	state.Draft = domain.ItemDraft{
		ItemType:       domain.ItemTypeWord,
		SourceLanguage: domain.LanguageEnglish,
		TargetLanguage: domain.LanguageUkrainian,
	}
	h.SetState(userID, state)

	if err := c.Edit("Send the word or phrase to add:", cancelMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send("Send the word or phrase to add:", cancelMarkup())
	}
	return c.Respond()
}

// itemTypeMarkup offers the four item kinds
func itemTypeMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("Word", "itemtype_"+string(domain.ItemTypeWord)),
			markup.Data("Phrase", "itemtype_"+string(domain.ItemTypePhrase)),
		),
		markup.Row(
			markup.Data("Phrasal verb", "itemtype_"+string(domain.ItemTypePhrasalVerb)),
			markup.Data("Idiom", "itemtype_"+string(domain.ItemTypeIdiom)),
		),
		markup.Row(btnCancel),
	)
	return markup
}

// handleItemTypeChosen finishes the add-item dialog and creates the item.
// On failure the draft is kept so a retry needs no re-entry.
func (h *Handler) handleItemTypeChosen(c tele.Context, data string) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	if state.State != domain.StateAddType {
		return c.Respond()
	}

	itemType := domain.ItemType(strings.TrimPrefix(data, "itemtype_"))
	if !itemType.Valid() {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown item type"})
	}
	state.Draft.ItemType = itemType
	h.SetState(userID, state)

	item, err := h.itemService.Create(reqCtx(), state.Draft)
	if err != nil {
		h.logger.Error("Failed to create item", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{
			Text:      "Couldn't save the item, pick a type to retry",
			ShowAlert: true,
		})
	}

	h.ResetState(userID)
	if err := c.Respond(&tele.CallbackResponse{Text: "Saved " + item.Content}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.showTrainer(c, userID, true)
}

// handleItemCard shows one item with edit and delete affordances
func (h *Handler) handleItemCard(c tele.Context, data string) error {
	userID := c.Sender().ID
	id := strings.TrimPrefix(data, "item_")

	item, ok := h.findItem(userID, id)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Item is no longer in the list"})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📝 %s\n🔄 %s\n", item.Content, item.Translation)
	if item.Example != "" {
		fmt.Fprintf(&b, "💬 %s\n", item.Example)
	}
	fmt.Fprintf(&b, "Type: %s, %s → %s", item.ItemType, item.SourceLanguage, item.TargetLanguage)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("✏️ Content", "edit_content_"+id),
			markup.Data("✏️ Translation", "edit_translation_"+id),
		),
		markup.Row(
			markup.Data("✏️ Example", "edit_example_"+id),
			markup.Data("🗑 Delete", "del_"+id),
		),
		markup.Row(markup.Data("◀️ Back to list", "items_back"), btnMainMenu),
	)

	if err := c.Edit(b.String(), markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(b.String(), markup)
	}
	return c.Respond()
}

// handleEditField starts the edit dialog for one field of an item
func (h *Handler) handleEditField(c tele.Context, data string) error {
	userID := c.Sender().ID

	parts := strings.SplitN(data, "_", 3)
	if len(parts) != 3 {
		return c.Respond(&tele.CallbackResponse{Text: "Bad edit request"})
	}
	field, id := parts[1], parts[2]

	state := h.GetState(userID)
	state.State = domain.StateEditValue
	state.EditID = id
	state.EditField = field
	h.SetState(userID, state)

	prompt := fmt.Sprintf("Send the new %s:", field)
	if field == "example" {
		prompt = "Send the new example, or \"-\" to clear it:"
	}

	if err := c.Edit(prompt, cancelMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(prompt, cancelMarkup())
	}
	return c.Respond()
}

// handleDeletePrompt asks for confirmation before deleting an item
func (h *Handler) handleDeletePrompt(c tele.Context, data string) error {
	userID := c.Sender().ID
	id := strings.TrimPrefix(data, "del_")

	item, ok := h.findItem(userID, id)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Item is no longer in the list"})
	}

	text := fmt.Sprintf("Delete %q? This can't be undone.", item.Content)
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("🗑 Yes, delete", "delyes_"+id),
			markup.Data("◀️ Keep it", "item_"+id),
		),
	)

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleDeleteConfirmed deletes the item and refreshes the list
func (h *Handler) handleDeleteConfirmed(c tele.Context, data string) error {
	userID := c.Sender().ID
	id := strings.TrimPrefix(data, "delyes_")

	if err := h.itemService.Delete(reqCtx(), id); err != nil {
		h.logger.Error("Failed to delete item",
			zap.String("item_id", id),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{
			Text:      "Couldn't delete the item",
			ShowAlert: true,
		})
	}

	if err := c.Respond(&tele.CallbackResponse{Text: "Deleted"}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.showTrainer(c, userID, true)
}

// findItem looks an item up in the user's buffered search results
func (h *Handler) findItem(userID int64, id string) (domain.LanguageItem, bool) {
	search := h.GetState(userID).Search
	items, _, err := h.itemService.Items(reqCtx(), search)
	if err != nil {
		return domain.LanguageItem{}, false
	}
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.LanguageItem{}, false
}

// reply edits the triggering message for callbacks, sends a new one for
// plain messages
func (h *Handler) reply(c tele.Context, userID int64, edit bool, text string, markup *tele.ReplyMarkup) error {
	if edit && c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}
