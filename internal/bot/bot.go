package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"study-reminders/internal/calendar"
	"study-reminders/internal/config"
	"study-reminders/internal/model"
	"study-reminders/internal/repository"
	"study-reminders/internal/service"
)

type conversationStage int

const (
	stageNone conversationStage = iota
	stageText
	stageDate
	stageTime
	stageImportance
)

const (
	cbCompletePrefix = "done:"
	cbEditPrefix     = "edit:"
	cbDeletePrefix   = "del:"
	cbCalDayPrefix   = "cal:day:"
	cbCalPrev        = "cal:prev"
	cbCalNext        = "cal:next"
	cbCalInert       = "cal:inert"
	cbTimePrefix     = "time:"
)

const (
	btnConfirm      = "✅ Confirm"
	btnCancel       = "↩️ Cancel"
	btnCancelDialog = "⏪ Cancel input"
	btnHigh         = "🔴 High"
	btnMedium       = "🔵 Medium"
	btnLow          = "🟢 Low"
	menuLabelNew    = "➕ New reminder"
	menuLabelList   = "📋 Reminders"
	menuLabelStats  = "📈 Activity"
	menuLabelHelp   = "ℹ️ Help"
)

// conversationState tracks one user's stepwise reminder input: the
// text, the calendar month they are viewing, the picked date and the
// time wheel position. editID is set while editing an existing record.
type conversationState struct {
	stage  conversationStage
	editID string
	text   string

	viewMonth time.Month
	viewYear  int

	date  time.Time // picked calendar date, zero until stageTime
	clock calendar.Clock12

	importance model.Importance
}

type confirmationRequest struct {
	reminderID string
}

// Bot aggregates the Telegram API with services.
type Bot struct {
	api           *tgbotapi.BotAPI
	userRepo      *repository.UserRepository
	reminderSvc   *service.ReminderService
	activitySvc   *service.ActivityService
	config        *config.Config
	nav           calendar.Nav
	conversations map[int64]*conversationState
	confirmations map[int64]confirmationRequest
	mu            sync.Mutex
}

func New(token string, userRepo *repository.UserRepository, reminderSvc *service.ReminderService, activitySvc *service.ActivityService, cfg *config.Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] bot authorized on account %s", api.Self.UserName)

	return &Bot{
		api:           api,
		userRepo:      userRepo,
		reminderSvc:   reminderSvc,
		activitySvc:   activitySvc,
		config:        cfg,
		nav:           calendar.Nav{Rollover: cfg.CalendarRollover},
		conversations: make(map[int64]*conversationState),
		confirmations: make(map[int64]confirmationRequest),
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Println("[info] start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				log.Printf("handle callback: %v", err)
			}
		case update.Message != nil:
			if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				log.Printf("handle message: %v", err)
			}
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	if !msg.IsCommand() && isCancelDialogInput(msg.Text) {
		b.clearConversation(msg.From.ID)
		b.clearConfirmation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "⏪ Input cancelled. Ready when you are.")
	}

	if !msg.IsCommand() {
		if handled, err := b.handleMenuAlias(ctx, msg); handled {
			return err
		}
	}

	if msg.IsCommand() {
		log.Printf("[info] command from %d: /%s %s", msg.From.ID, msg.Command(), msg.CommandArguments())
		return b.handleCommand(ctx, msg)
	}

	if pending, ok := b.getConfirmation(msg.From.ID); ok {
		return b.handleConfirmationResponse(ctx, msg, pending)
	}

	if b.hasConversation(msg.From.ID) {
		return b.handleConversation(ctx, msg)
	}

	return b.sendText(msg.Chat.ID, "I didn't catch that. Use /add to schedule a study reminder or /help for the commands.")
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		return b.handleStart(ctx, msg)
	case "help":
		return b.handleHelp(msg)
	case "add":
		return b.startReminderConversation(ctx, msg, "")
	case "list":
		return b.handleList(ctx, msg)
	case "activity":
		return b.handleActivity(ctx, msg)
	case "cancel":
		b.clearConversation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "⏪ Input cancelled.")
	default:
		return b.sendText(msg.Chat.ID, "Unknown command. See /help.")
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := b.activitySvc.RecordVisit(ctx, user, now); err != nil {
		log.Printf("record visit for %d: %v", user.TelegramID, err)
	}

	summary, err := b.activitySvc.Summary(ctx, user, now)
	if err != nil {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("Could not load your activity: %s", escape(err.Error())))
	}

	name := strings.TrimSpace(msg.From.FirstName)
	if name == "" {
		name = "there"
	}

	return b.sendText(msg.Chat.ID, renderOverview(name, summary, now))
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) error {
	text := "ℹ️ <b>Commands</b>\n" +
		"• /add — schedule a study reminder step by step\n" +
		"• /list — your reminders, with complete/edit/delete buttons\n" +
		"• /activity — streak, totals and this month's study calendar\n" +
		"• /cancel — abandon the current input\n" +
		"• /help — this message"
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleList(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}
	return b.sendReminderList(ctx, msg.Chat.ID, user)
}

func (b *Bot) handleActivity(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := b.activitySvc.RecordVisit(ctx, user, now); err != nil {
		log.Printf("record visit for %d: %v", user.TelegramID, err)
	}

	summary, err := b.activitySvc.Summary(ctx, user, now)
	if err != nil {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("Could not load your activity: %s", escape(err.Error())))
	}
	cells, err := b.activitySvc.MonthCells(ctx, user, now)
	if err != nil {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("Could not load your calendar: %s", escape(err.Error())))
	}

	return b.sendText(msg.Chat.ID, renderActivity(summary, cells, now))
}

// startReminderConversation begins the add/edit dialog. editID is empty
// for a new reminder.
func (b *Bot) startReminderConversation(ctx context.Context, msg *tgbotapi.Message, editID string) error {
	if _, err := b.ensureUser(ctx, msg.From); err != nil {
		return err
	}

	now := time.Now()
	state := &conversationState{
		stage:      stageText,
		editID:     editID,
		viewMonth:  now.Month(),
		viewYear:   now.Year(),
		importance: model.ImportanceMedium,
	}
	b.setConversation(msg.From.ID, state)

	prompt := "🆕 <b>New reminder.</b>\nWhat do you need to study?"
	if editID != "" {
		prompt = "✏️ <b>Editing.</b>\nWhat should the reminder say?"
	}
	return b.sendWithReplyMarkup(msg.Chat.ID, prompt, cancelKeyboard())
}

func (b *Bot) handleConversation(ctx context.Context, msg *tgbotapi.Message) error {
	state := b.getConversation(msg.From.ID)
	if state == nil {
		return nil
	}

	text := strings.TrimSpace(msg.Text)
	switch state.stage {
	case stageText:
		if text == "" {
			return b.sendWithReplyMarkup(msg.Chat.ID, "Please enter what you need to study.", cancelKeyboard())
		}
		state.text = text
		state.stage = stageDate
		return b.sendCalendar(msg.Chat.ID, state)
	case stageDate:
		return b.sendText(msg.Chat.ID, "Pick a day on the calendar above, or /cancel.")
	case stageTime:
		return b.sendText(msg.Chat.ID, "Use the arrows above to set the time, then press Done.")
	case stageImportance:
		level, ok := parseImportanceInput(text)
		if !ok {
			return b.sendWithReplyMarkup(msg.Chat.ID, "Choose an importance level.", importanceKeyboard())
		}
		state.importance = level
		return b.finishConversation(ctx, msg.From, msg.Chat.ID, state)
	default:
		b.clearConversation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "Input reset. Start again with /add.")
	}
}

func (b *Bot) finishConversation(ctx context.Context, from *tgbotapi.User, chatID int64, state *conversationState) error {
	user, err := b.ensureUser(ctx, from)
	if err != nil {
		return err
	}

	now := time.Now()
	input := service.ReminderInput{
		Text:        state.text,
		ScheduledAt: state.clock.Apply(state.date),
		Importance:  state.importance,
	}

	var reminder *model.Reminder
	if state.editID == "" {
		reminder, err = b.reminderSvc.Create(ctx, user, input, now)
	} else {
		reminder, err = b.reminderSvc.Update(ctx, user, state.editID, input, now)
	}
	if err != nil {
		var invalid *model.ValidationError
		switch {
		case errors.As(err, &invalid) && invalid.Field == "scheduledAt":
			// Back to the wheel: the picked instant slid into the past.
			state.stage = stageTime
			if err := b.sendText(chatID, "⏰ That time has already passed. Pick a later one."); err != nil {
				return err
			}
			return b.sendTimeWheel(chatID, state)
		case service.IsNotFound(err):
			b.clearConversation(from.ID)
			return b.sendText(chatID, "That reminder no longer exists.")
		default:
			b.clearConversation(from.ID)
			return b.sendText(chatID, fmt.Sprintf("Could not save the reminder: %s", escape(err.Error())))
		}
	}

	b.clearConversation(from.ID)
	log.Printf("[info] reminder saved id=%s user=%d edit=%t", reminder.ID, user.ID, state.editID != "")

	msg := tgbotapi.NewMessage(chatID, renderSaved(reminder, state.editID != ""))
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(msg); err != nil {
		return err
	}
	return b.sendReminderList(ctx, chatID, user)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb == nil || cb.From == nil || cb.Message == nil {
		return nil
	}

	data := cb.Data
	switch {
	case strings.HasPrefix(data, cbCalDayPrefix), data == cbCalPrev, data == cbCalNext, data == cbCalInert:
		return b.handleCalendarCallback(cb)
	case strings.HasPrefix(data, cbTimePrefix):
		return b.handleTimeCallback(ctx, cb)
	case strings.HasPrefix(data, cbCompletePrefix):
		b.ackCallback(cb, "")
		return b.completeAndRefresh(ctx, cb.Message.Chat.ID, cb.From, strings.TrimPrefix(data, cbCompletePrefix))
	case strings.HasPrefix(data, cbEditPrefix):
		b.ackCallback(cb, "")
		return b.startEditFromCallback(ctx, cb, strings.TrimPrefix(data, cbEditPrefix))
	case strings.HasPrefix(data, cbDeletePrefix):
		b.ackCallback(cb, "")
		return b.askDeleteConfirmation(ctx, cb.Message.Chat.ID, cb.From, strings.TrimPrefix(data, cbDeletePrefix))
	default:
		b.ackCallback(cb, "")
		return nil
	}
}

func (b *Bot) handleCalendarCallback(cb *tgbotapi.CallbackQuery) error {
	state := b.getConversation(cb.From.ID)
	if state == nil || state.stage != stageDate {
		b.ackCallback(cb, "")
		return nil
	}

	switch cb.Data {
	case cbCalInert:
		// Blank slots and past days: selecting them is a no-op.
		b.ackCallback(cb, "That day has already passed.")
		return nil
	case cbCalPrev:
		state.viewMonth, state.viewYear = b.nav.PrevMonth(state.viewMonth, state.viewYear)
		b.ackCallback(cb, "")
		return b.editCalendar(cb, state)
	case cbCalNext:
		state.viewMonth, state.viewYear = b.nav.NextMonth(state.viewMonth, state.viewYear)
		b.ackCallback(cb, "")
		return b.editCalendar(cb, state)
	}

	day, err := parseDayCallback(cb.Data)
	if err != nil {
		b.ackCallback(cb, "")
		return nil
	}

	now := time.Now()
	date := time.Date(state.viewYear, state.viewMonth, day, 0, 0, 0, 0, now.Location())
	// The keyboard only offers selectable days, but the snapshot may
	// have aged between render and tap.
	if date.Before(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())) {
		b.ackCallback(cb, "That day has already passed.")
		return nil
	}

	state.date = date
	state.clock = calendar.ClockOf(now)
	state.stage = stageTime
	b.ackCallback(cb, "")

	log.Printf("[info] date picked user=%d date=%s", cb.From.ID, model.DateKey(date))
	return b.sendTimeWheel(cb.Message.Chat.ID, state)
}

func (b *Bot) handleTimeCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	state := b.getConversation(cb.From.ID)
	if state == nil || state.stage != stageTime {
		b.ackCallback(cb, "")
		return nil
	}

	action := strings.TrimPrefix(cb.Data, cbTimePrefix)
	switch action {
	case "h+":
		state.clock = state.clock.IncHour()
	case "h-":
		state.clock = state.clock.DecHour()
	case "m+":
		state.clock = state.clock.IncMinute()
	case "m-":
		state.clock = state.clock.DecMinute()
	case "am":
		state.clock = state.clock.SetPeriod(false)
	case "pm":
		state.clock = state.clock.SetPeriod(true)
	case "ok":
		state.stage = stageImportance
		b.ackCallback(cb, "")
		return b.sendWithReplyMarkup(cb.Message.Chat.ID, "How important is it?", importanceKeyboard())
	default:
		b.ackCallback(cb, "")
		return nil
	}

	b.ackCallback(cb, "")
	return b.editTimeWheel(cb, state)
}

func (b *Bot) startEditFromCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, id string) error {
	user, err := b.ensureUser(ctx, cb.From)
	if err != nil {
		return err
	}

	reminder, err := b.reminderSvc.Get(ctx, user, id)
	if err != nil {
		if service.IsNotFound(err) {
			return b.sendText(cb.Message.Chat.ID, "Reminder not found.")
		}
		return err
	}
	if reminder.Completed {
		return b.sendText(cb.Message.Chat.ID, "Completed reminders can't be edited.")
	}

	now := time.Now()
	state := &conversationState{
		stage:      stageText,
		editID:     reminder.ID,
		viewMonth:  now.Month(),
		viewYear:   now.Year(),
		importance: reminder.Importance,
	}
	b.setConversation(cb.From.ID, state)

	prompt := fmt.Sprintf("✏️ <b>Editing</b> «%s».\nWhat should it say now?", escape(reminder.Text))
	return b.sendWithReplyMarkup(cb.Message.Chat.ID, prompt, cancelKeyboard())
}

func (b *Bot) askDeleteConfirmation(ctx context.Context, chatID int64, from *tgbotapi.User, id string) error {
	user, err := b.ensureUser(ctx, from)
	if err != nil {
		return err
	}

	reminder, err := b.reminderSvc.Get(ctx, user, id)
	if err != nil {
		if service.IsNotFound(err) {
			return b.sendText(chatID, "Reminder not found.")
		}
		return err
	}

	b.setConfirmation(from.ID, confirmationRequest{reminderID: reminder.ID})
	text := fmt.Sprintf("Delete the reminder «%s»?", escape(reminder.Text))
	return b.sendWithReplyMarkup(chatID, text, confirmKeyboard())
}

func (b *Bot) handleConfirmationResponse(ctx context.Context, msg *tgbotapi.Message, req confirmationRequest) error {
	text := strings.TrimSpace(msg.Text)
	switch {
	case isConfirmInput(text):
		b.clearConfirmation(msg.From.ID)
		return b.deleteAndRefresh(ctx, msg.Chat.ID, msg.From, req.reminderID)
	case isCancelInput(text):
		b.clearConfirmation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "Kept it. Nothing was deleted.")
	default:
		return b.sendWithReplyMarkup(msg.Chat.ID, "Confirm or cancel the deletion.", confirmKeyboard())
	}
}

func (b *Bot) completeAndRefresh(ctx context.Context, chatID int64, from *tgbotapi.User, id string) error {
	user, err := b.ensureUser(ctx, from)
	if err != nil {
		return err
	}

	now := time.Now()
	// Completing twice is a no-op at the service level; detect it here
	// only to phrase the reply.
	existing, err := b.reminderSvc.Get(ctx, user, id)
	if err != nil {
		if service.IsNotFound(err) {
			return b.sendText(chatID, "Reminder not found or already deleted.")
		}
		return b.sendText(chatID, fmt.Sprintf("Error: %s", escape(err.Error())))
	}
	alreadyDone := existing.Completed

	reminder, err := b.reminderSvc.Complete(ctx, user, id, now)
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("Error: %s", escape(err.Error())))
	}

	if alreadyDone {
		return b.sendText(chatID, fmt.Sprintf("«%s» was already done.", escape(reminder.Text)))
	}

	log.Printf("[info] reminder completed id=%s user=%d", reminder.ID, user.ID)

	summary, err := b.activitySvc.Summary(ctx, user, now)
	if err != nil {
		log.Printf("summary after completion for %d: %v", user.TelegramID, err)
		summary.Streak = 1
	}

	info := fmt.Sprintf("✅ «%s» done! 🔥 %d-day streak.", escape(reminder.Text), summary.Streak)
	if err := b.sendText(chatID, info); err != nil {
		return err
	}
	return b.sendReminderList(ctx, chatID, user)
}

func (b *Bot) deleteAndRefresh(ctx context.Context, chatID int64, from *tgbotapi.User, id string) error {
	user, err := b.ensureUser(ctx, from)
	if err != nil {
		return err
	}

	reminder, err := b.reminderSvc.Get(ctx, user, id)
	if err != nil {
		if service.IsNotFound(err) {
			return b.sendText(chatID, "Reminder not found or already deleted.")
		}
		return b.sendText(chatID, fmt.Sprintf("Error: %s", escape(err.Error())))
	}

	if err := b.reminderSvc.Delete(ctx, user, id); err != nil {
		return b.sendText(chatID, fmt.Sprintf("Could not delete: %s", escape(err.Error())))
	}

	log.Printf("[info] reminder deleted id=%s user=%d", id, user.ID)
	if err := b.sendText(chatID, fmt.Sprintf("🗑 «%s» deleted.", escape(reminder.Text))); err != nil {
		return err
	}
	return b.sendReminderList(ctx, chatID, user)
}

// SendDailySummaries pushes the evening overview to every known user.
func (b *Bot) SendDailySummaries(ctx context.Context) error {
	users, err := b.userRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, user := range users {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		summary, err := b.activitySvc.Summary(ctx, &user, now)
		if err != nil {
			log.Printf("build summary for user %d: %v", user.TelegramID, err)
			continue
		}
		reminders, err := b.reminderSvc.List(ctx, &user)
		if err != nil {
			log.Printf("list reminders for user %d: %v", user.TelegramID, err)
			continue
		}
		if err := b.sendText(user.TelegramID, renderDailySummary(summary, reminders, now)); err != nil {
			log.Printf("send summary to %d: %v", user.TelegramID, err)
		}
	}
	return nil
}

func (b *Bot) handleMenuAlias(ctx context.Context, msg *tgbotapi.Message) (bool, error) {
	switch strings.TrimSpace(msg.Text) {
	case menuLabelNew:
		return true, b.startReminderConversation(ctx, msg, "")
	case menuLabelList:
		return true, b.handleList(ctx, msg)
	case menuLabelStats:
		return true, b.handleActivity(ctx, msg)
	case menuLabelHelp:
		return true, b.handleHelp(msg)
	default:
		return false, nil
	}
}

func (b *Bot) ensureUser(ctx context.Context, from *tgbotapi.User) (*model.User, error) {
	return b.userRepo.UpsertFromTelegram(ctx, from.ID, from.FirstName, from.LastName, from.UserName)
}

func (b *Bot) ackCallback(cb *tgbotapi.CallbackQuery, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, text)); err != nil {
		log.Printf("callback ack: %v", err)
	}
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = mainMenuKeyboard()
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendWithReplyMarkup(chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) getConfirmation(userID int64) (confirmationRequest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	req, ok := b.confirmations[userID]
	return req, ok
}

func (b *Bot) setConfirmation(userID int64, req confirmationRequest) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.confirmations[userID] = req
}

func (b *Bot) clearConfirmation(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.confirmations, userID)
}

func (b *Bot) setConversation(userID int64, state *conversationState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conversations[userID] = state
}

func (b *Bot) getConversation(userID int64) *conversationState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conversations[userID]
}

func (b *Bot) hasConversation(userID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.conversations[userID]
	return ok
}

func (b *Bot) clearConversation(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.conversations, userID)
}

func isConfirmInput(text string) bool {
	value := strings.TrimSpace(strings.ToLower(text))
	return value == strings.ToLower(btnConfirm) || value == "confirm" || value == "yes"
}

func isCancelInput(text string) bool {
	value := strings.TrimSpace(strings.ToLower(text))
	return value == strings.ToLower(btnCancel) || value == "cancel"
}

func isCancelDialogInput(text string) bool {
	value := strings.TrimSpace(strings.ToLower(text))
	return value == strings.ToLower(btnCancelDialog) || value == "cancel input"
}

func parseImportanceInput(text string) (model.Importance, bool) {
	switch strings.TrimSpace(strings.ToLower(text)) {
	case strings.ToLower(btnHigh), "high":
		return model.ImportanceHigh, true
	case strings.ToLower(btnMedium), "medium":
		return model.ImportanceMedium, true
	case strings.ToLower(btnLow), "low":
		return model.ImportanceLow, true
	default:
		return 0, false
	}
}

