package domain

// UserState represents a user's current dialog step
type UserState string

const (
	StateIdle            UserState = "idle"
	StateWaitingPassword UserState = "waiting_password"

	// Trainer states
	StateWaitingSearch  UserState = "waiting_search"
	StateAddContent     UserState = "add_content"
	StateAddTranslation UserState = "add_translation"
	StateAddExample     UserState = "add_example"
	StateAddType        UserState = "add_type"
	StateEditValue      UserState = "edit_value"

	// Calendar states
	StateEventTitle UserState = "event_title"
	StateEventStart UserState = "event_start"
	StateEventEnd   UserState = "event_end"
)

// StateData holds the temporary data for a user's current dialog.
// Mutation failures keep this intact so a retry needs no re-entry.
type StateData struct {
	State UserState

	// Trainer dialog data
	Search    string
	Draft     ItemDraft
	EditID    string
	EditField string

	// Calendar dialog data
	EventDraft CalendarEvent
}
