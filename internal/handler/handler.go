package handler

import (
	"context"
	"sync"
	"time"

	"phrasebot/internal/calendar"
	"phrasebot/internal/domain"
	"phrasebot/internal/quiz"
	"phrasebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot             *tele.Bot
	authService     *service.AuthService
	itemService     *service.ItemService
	exerciseService *service.ExerciseService
	planner         *calendar.Planner
	quizQuestions   int
	logger          *zap.Logger

	// Per-user dialog states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Per-user quiz sessions
	sessions   map[int64]*quiz.Session
	sessionMux sync.Mutex

	// Per-user calendar reference dates
	calRefs   map[int64]time.Time
	calRefMux sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	itemService *service.ItemService,
	exerciseService *service.ExerciseService,
	planner *calendar.Planner,
	quizQuestions int,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:             bot,
		authService:     authService,
		itemService:     itemService,
		exerciseService: exerciseService,
		planner:         planner,
		quizQuestions:   quizQuestions,
		logger:          logger,
		states:          make(map[int64]*domain.StateData),
		sessions:        make(map[int64]*quiz.Session),
		calRefs:         make(map[int64]time.Time),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Static inline buttons
	h.bot.Handle(&btnTrainer, h.handleTrainer)
	h.bot.Handle(&btnQuiz, h.handleQuizStart)
	h.bot.Handle(&btnCalendar, h.handleCalendarMonth)
	h.bot.Handle(&btnSignOut, h.handleSignOut)
	h.bot.Handle(&btnMainMenu, h.handleMainMenu)
	h.bot.Handle(&btnSearch, h.handleSearchPrompt)
	h.bot.Handle(&btnAddItem, h.handleAddItemStart)
	h.bot.Handle(&btnLoadMore, h.handleLoadMore)
	h.bot.Handle(&btnCancel, h.handleCancel)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state, keeping the current search text
// so the trainer list survives dialog cancellation
func (h *Handler) ResetState(userID int64) {
	search := h.GetState(userID).Search
	h.SetState(userID, &domain.StateData{State: domain.StateIdle, Search: search})
}

func (h *Handler) session(userID int64) *quiz.Session {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	return h.sessions[userID]
}

func (h *Handler) setSession(userID int64, s *quiz.Session) {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	if s == nil {
		delete(h.sessions, userID)
		return
	}
	h.sessions[userID] = s
}

func (h *Handler) calRef(userID int64) time.Time {
	h.calRefMux.Lock()
	defer h.calRefMux.Unlock()
	ref, ok := h.calRefs[userID]
	if !ok {
		return time.Now()
	}
	return ref
}

func (h *Handler) setCalRef(userID int64, ref time.Time) {
	h.calRefMux.Lock()
	defer h.calRefMux.Unlock()
	h.calRefs[userID] = ref
}

// Inline keyboard buttons
var (
	btnTrainer = tele.Btn{
		Unique: "trainer",
		Text:   "📚 Language trainer",
	}
	btnQuiz = tele.Btn{
		Unique: "quiz_start",
		Text:   "🎯 Guess exercise",
	}
	btnCalendar = tele.Btn{
		Unique: "calendar",
		Text:   "📅 Calendar",
	}
	btnSignOut = tele.Btn{
		Unique: "sign_out",
		Text:   "🚪 Sign out",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
	btnSearch = tele.Btn{
		Unique: "items_search",
		Text:   "🔍 Search",
	}
	btnAddItem = tele.Btn{
		Unique: "items_add",
		Text:   "➕ Add item",
	}
	btnLoadMore = tele.Btn{
		Unique: "items_more",
		Text:   "⬇️ Load more",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnTrainer),
		menu.Row(btnQuiz),
		menu.Row(btnCalendar),
		menu.Row(btnSignOut),
	)
	return menu
}

// cancelMarkup returns a keyboard with a single cancel button
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

// reqCtx returns the context for backend calls made from a handler.
// Telegram updates carry no context of their own; the HTTP client's
// timeout bounds every call.
func reqCtx() context.Context {
	return context.Background()
}
