package bot

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"study-reminders/internal/activity"
	"study-reminders/internal/calendar"
	"study-reminders/internal/model"
)

// studyTips rotate through the overview footer, one per day of month.
var studyTips = []string{
	"Short daily sessions beat weekend marathons.",
	"Review yesterday's notes before starting something new.",
	"Put the hardest subject first while you're fresh.",
	"Teach it to an imaginary student to test yourself.",
	"A five-minute start is still a start.",
}

func renderOverview(name string, summary activity.Summary, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s, %s 👋\n", activity.Greeting(now.Hour()), escape(name)))
	b.WriteString("<b>Ready to plan your study session? Let's make it count!</b>\n\n")
	b.WriteString(fmt.Sprintf("🔥 Day streak: <b>%d</b>\n", summary.Streak))
	b.WriteString(fmt.Sprintf("🗓 Total study days: <b>%d</b>\n", summary.TotalDays))
	b.WriteString(fmt.Sprintf("📈 Monthly goal: <b>%d%%</b>\n\n", summary.MonthlyProgress))
	b.WriteString(escape(activity.Motivation(summary.Streak)))
	b.WriteString("\n\n💡 ")
	b.WriteString(escape(studyTips[activity.MessageIndex(now.Day(), len(studyTips))]))
	return b.String()
}

func renderActivity(summary activity.Summary, cells []calendar.Cell, now time.Time) string {
	var b strings.Builder
	b.WriteString("📈 <b>Study Activity</b>\n\n")
	b.WriteString(fmt.Sprintf("🔥 Day streak: <b>%d</b>\n", summary.Streak))
	b.WriteString(fmt.Sprintf("🗓 Total study days: <b>%d</b>\n", summary.TotalDays))
	b.WriteString(fmt.Sprintf("📈 Monthly goal: <b>%d%%</b>\n\n", summary.MonthlyProgress))
	b.WriteString(escape(activity.Motivation(summary.Streak)))
	b.WriteString("\n\n")
	b.WriteString(renderStudyGrid(cells, now))
	b.WriteString("\n✓ marks a day you studied.")
	return b.String()
}

// renderStudyGrid draws the month as a monospace block: one header
// line, a weekday line, then 7-column rows. Studied days carry a ✓,
// today is bracketed.
func renderStudyGrid(cells []calendar.Cell, now time.Time) string {
	var b strings.Builder
	b.WriteString("<pre>")
	b.WriteString(fmt.Sprintf("%s %d\n", now.Month(), now.Year()))
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	col := 0
	for _, cell := range cells {
		b.WriteString(renderDayCell(cell))
		col++
		if col == 7 {
			b.WriteByte('\n')
			col = 0
		}
	}
	if col != 0 {
		b.WriteByte('\n')
	}
	b.WriteString("</pre>")
	return b.String()
}

func renderDayCell(cell calendar.Cell) string {
	if cell.Blank() {
		return "    "
	}
	switch {
	case cell.IsToday && cell.HasStudied:
		return fmt.Sprintf("[%2d✓", cell.Day)
	case cell.IsToday:
		return fmt.Sprintf("[%2d]", cell.Day)
	case cell.HasStudied:
		return fmt.Sprintf(" %2d✓", cell.Day)
	default:
		return fmt.Sprintf(" %2d ", cell.Day)
	}
}

func renderSaved(r *model.Reminder, edited bool) string {
	header := "✅ <b>Reminder saved</b>\n"
	if edited {
		header = "✏️ <b>Reminder updated</b>\n"
	}
	var b strings.Builder
	b.WriteString(header)
	b.WriteString(fmt.Sprintf("• <b>Study:</b> %s\n", escape(r.Text)))
	b.WriteString(fmt.Sprintf("• <b>When:</b> %s\n", formatWhen(r.ScheduledAt)))
	b.WriteString(fmt.Sprintf("• <b>Importance:</b> %s", r.Importance.Label()))
	return b.String()
}

func renderDailySummary(summary activity.Summary, reminders []model.Reminder, now time.Time) string {
	var b strings.Builder
	b.WriteString("🌙 <b>Daily study summary</b>\n")
	b.WriteString(fmt.Sprintf("🗓 %s\n\n", now.Format("Monday, January 2")))
	b.WriteString(fmt.Sprintf("🔥 Streak: <b>%d</b> · 📈 Month: <b>%d%%</b>\n\n", summary.Streak, summary.MonthlyProgress))

	var pending []model.Reminder
	for _, r := range reminders {
		if !r.Completed {
			pending = append(pending, r)
		}
	}

	b.WriteString("📋 <b>Still scheduled</b>\n")
	if len(pending) == 0 {
		b.WriteString("— nothing open, well done\n")
	} else {
		for _, r := range pending {
			b.WriteString(fmt.Sprintf("%s %s — %s\n", importanceIcon(r.Importance), formatWhen(r.ScheduledAt), escape(r.Text)))
		}
	}

	return strings.TrimSpace(b.String())
}

// sendReminderList shows the ordered snapshot with one button row per
// open reminder and a delete button for completed ones.
func (b *Bot) sendReminderList(ctx context.Context, chatID int64, user *model.User) error {
	reminders, err := b.reminderSvc.List(ctx, user)
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("Could not load reminders: %s", escape(err.Error())))
	}

	if len(reminders) == 0 {
		return b.sendText(chatID, "No reminders scheduled. Add one with /add.")
	}

	now := time.Now()
	var text strings.Builder
	text.WriteString("📋 <b>Your reminders</b>\n\n")

	var buttons [][]tgbotapi.InlineKeyboardButton
	for i, r := range reminders {
		text.WriteString(formatReminderLine(i+1, r, now))

		label := fmt.Sprintf("#%d · %s", i+1, shortText(r.Text, 20))
		var row []tgbotapi.InlineKeyboardButton
		if r.Completed {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData("🗑 "+label, cbDeletePrefix+r.ID))
		} else {
			row = append(row,
				tgbotapi.NewInlineKeyboardButtonData("✅ "+label, cbCompletePrefix+r.ID),
				tgbotapi.NewInlineKeyboardButtonData("✏️", cbEditPrefix+r.ID),
				tgbotapi.NewInlineKeyboardButtonData("🗑", cbDeletePrefix+r.ID),
			)
		}
		buttons = append(buttons, row)
	}

	msg := tgbotapi.NewMessage(chatID, strings.TrimSpace(text.String()))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(buttons...)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err = b.api.Send(msg)
	return err
}

func formatReminderLine(n int, r model.Reminder, now time.Time) string {
	var b strings.Builder
	if r.Completed {
		b.WriteString(fmt.Sprintf("✔️ <b>#%d</b> <s>%s</s>\n", n, escape(r.Text)))
		if r.CompletedAt != nil {
			b.WriteString(fmt.Sprintf("   done %s\n", r.CompletedAt.In(now.Location()).Format("Jan 2, 3:04 PM")))
		}
	} else {
		b.WriteString(fmt.Sprintf("%s <b>#%d</b> %s\n", importanceIcon(r.Importance), n, escape(r.Text)))
		b.WriteString(fmt.Sprintf("   ⏰ %s · %s\n", formatWhen(r.ScheduledAt), r.Importance.Label()))
	}
	b.WriteByte('\n')
	return b.String()
}

func importanceIcon(v model.Importance) string {
	switch v {
	case model.ImportanceHigh:
		return "🔴"
	case model.ImportanceLow:
		return "🟢"
	default:
		return "🔵"
	}
}

func formatWhen(t time.Time) string {
	return t.Format("Mon, Jan 2 at 3:04 PM")
}

func shortText(text string, maxLen int) string {
	clean := strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	runes := []rune(clean)
	if len(runes) <= maxLen {
		return clean
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}

func escape(s string) string {
	return html.EscapeString(s)
}
