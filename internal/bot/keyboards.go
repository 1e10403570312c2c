package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"study-reminders/internal/calendar"
)

// calendarKeyboard renders a month grid as inline buttons: a nav header,
// a weekday row, then 7-wide day rows. Non-selectable cells (blanks and
// past days) carry an inert callback so tapping them does nothing.
func calendarKeyboard(month time.Month, year int, today time.Time) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("‹", cbCalPrev),
		tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s %d", month.String()[:3], year), cbCalInert),
		tgbotapi.NewInlineKeyboardButtonData("›", cbCalNext),
	))

	weekdays := tgbotapi.NewInlineKeyboardRow()
	for _, label := range []string{"S", "M", "T", "W", "T", "F", "S"} {
		weekdays = append(weekdays, tgbotapi.NewInlineKeyboardButtonData(label, cbCalInert))
	}
	rows = append(rows, weekdays)

	cells := calendar.MonthGrid(month, year, nil, today)
	row := tgbotapi.NewInlineKeyboardRow()
	for _, cell := range cells {
		row = append(row, dayButton(cell))
		if len(row) == 7 {
			rows = append(rows, row)
			row = tgbotapi.NewInlineKeyboardRow()
		}
	}
	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(" ", cbCalInert))
		}
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func dayButton(cell calendar.Cell) tgbotapi.InlineKeyboardButton {
	if cell.Blank() {
		return tgbotapi.NewInlineKeyboardButtonData(" ", cbCalInert)
	}
	label := strconv.Itoa(cell.Day)
	switch {
	case cell.IsToday:
		label = "·" + label + "·"
	case cell.IsPast:
		label = "✕"
	}
	if !cell.Selectable {
		return tgbotapi.NewInlineKeyboardButtonData(label, cbCalInert)
	}
	return tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("%s%d", cbCalDayPrefix, cell.Day))
}

func parseDayCallback(data string) (int, error) {
	raw := strings.TrimPrefix(data, cbCalDayPrefix)
	day, err := strconv.Atoi(raw)
	if err != nil || day < 1 || day > 31 {
		return 0, fmt.Errorf("bad calendar callback %q", data)
	}
	return day, nil
}

// timeKeyboard renders the 12-hour adjustment wheel: up arrows, the
// current hour/minute readout, down arrows, the AM/PM row and Done.
func timeKeyboard(c calendar.Clock12) tgbotapi.InlineKeyboardMarkup {
	am, pm := "AM", "PM"
	if c.PM {
		pm = "• PM •"
	} else {
		am = "• AM •"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▲", cbTimePrefix+"h+"),
			tgbotapi.NewInlineKeyboardButtonData("▲", cbTimePrefix+"m+"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%02d", c.Hour), cbCalInert),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%02d", c.Minute), cbCalInert),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▼", cbTimePrefix+"h-"),
			tgbotapi.NewInlineKeyboardButtonData("▼", cbTimePrefix+"m-"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(am, cbTimePrefix+"am"),
			tgbotapi.NewInlineKeyboardButtonData(pm, cbTimePrefix+"pm"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✓ Done", cbTimePrefix+"ok"),
		),
	)
}

// sendCalendar posts the date-picker message for the viewed month.
func (b *Bot) sendCalendar(chatID int64, state *conversationState) error {
	text := "📅 <b>Step 2:</b> pick a day."
	markup := calendarKeyboard(state.viewMonth, state.viewYear, time.Now())
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	_, err := b.api.Send(msg)
	return err
}

// editCalendar swaps the keyboard in place after month navigation.
func (b *Bot) editCalendar(cb *tgbotapi.CallbackQuery, state *conversationState) error {
	markup := calendarKeyboard(state.viewMonth, state.viewYear, time.Now())
	edit := tgbotapi.NewEditMessageReplyMarkup(cb.Message.Chat.ID, cb.Message.MessageID, markup)
	_, err := b.api.Request(edit)
	return err
}

func (b *Bot) sendTimeWheel(chatID int64, state *conversationState) error {
	text := fmt.Sprintf("⏰ <b>Step 3:</b> set the time for %s.", state.date.Format("Monday, January 2"))
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = timeKeyboard(state.clock)
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) editTimeWheel(cb *tgbotapi.CallbackQuery, state *conversationState) error {
	edit := tgbotapi.NewEditMessageReplyMarkup(cb.Message.Chat.ID, cb.Message.MessageID, timeKeyboard(state.clock))
	_, err := b.api.Request(edit)
	return err
}

func confirmKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnConfirm),
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelNew),
			tgbotapi.NewKeyboardButton(menuLabelList),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelStats),
			tgbotapi.NewKeyboardButton(menuLabelHelp),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = false
	return kb
}

func cancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func importanceKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnHigh),
			tgbotapi.NewKeyboardButton(btnMedium),
			tgbotapi.NewKeyboardButton(btnLow),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}
