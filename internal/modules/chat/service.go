package chat

import (
	"fmt"
	"strings"
	"time"

	"mobileexperts/internal/modules/schedule"
)

// Reply is one assistant turn: the text plus zero or more suggested
// actions the widget renders as buttons.
type Reply struct {
	Text    string   `json:"text"`
	Actions []Action `json:"actions,omitempty"`
}

// Exchange is one request/response pair kept in the per-session history.
type Exchange struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
	At   int64  `json:"at"`
}

// Service is the rule-based booking assistant. It is stateless; session
// history lives with the caller (one slice per websocket connection),
// never in package-level state.
type Service struct {
	calendar Calendar
}

// Calendar is the slice of the schedule module the assistant needs to
// answer "are you open".
type Calendar interface {
	HoursFor(date time.Time) (schedule.DayHours, bool)
}

func NewService(calendar Calendar) *Service {
	return &Service{calendar: calendar}
}

func (s *Service) Respond(message string) Reply {
	msg := strings.ToLower(strings.TrimSpace(message))

	switch {
	case msg == "":
		return Reply{Text: "Hi! I can help you book a repair, check our hours, or get a price estimate. What do you need?"}

	case containsAny(msg, "book", "appointment", "schedule", "repair my"):
		return Reply{
			Text: "Happy to help you book a repair. Pick a time that works for you and we'll take it from there.",
			Actions: []Action{
				{Type: ActionStartBooking, Label: "Book a repair"},
			},
		}

	case containsAny(msg, "hours", "open", "close", "when are you"):
		return Reply{
			Text: s.hoursToday(),
			Actions: []Action{
				{Type: ActionShowHours, Label: "Full schedule"},
			},
		}

	case containsAny(msg, "price", "cost", "how much", "quote", "estimate"):
		return Reply{
			Text: "Prices depend on the device and the problem. Tell me both and I'll pull up an estimate, or use the quote calculator.",
			Actions: []Action{
				{Type: ActionQuote, Label: "Get a quote"},
			},
		}

	case containsAny(msg, "track", "status", "my order", "my booking"):
		return Reply{
			Text: "You can check your repair status with the tracking code from your confirmation message.",
			Actions: []Action{
				redirect("Track my repair", "/track"),
			},
		}

	case containsAny(msg, "where", "address", "location", "directions"):
		return Reply{
			Text: "We're at 1134 Liberty Ave, Brooklyn, NY 11208.",
			Actions: []Action{
				redirect("Get directions", "/contact"),
			},
		}

	default:
		return Reply{
			Text: "I can help with booking a repair, prices, store hours, or tracking an existing repair. Which one?",
			Actions: []Action{
				{Type: ActionStartBooking, Label: "Book a repair"},
				{Type: ActionQuote, Label: "Get a quote"},
			},
		}
	}
}

func (s *Service) hoursToday() string {
	now := time.Now()
	hours, open := s.calendar.HoursFor(now)
	if !open {
		return "We're closed today. Send a message anyway and we'll get back to you first thing."
	}
	return fmt.Sprintf("Today we're open %s to %s.",
		schedule.FormatMinute(hours.OpensAt), schedule.FormatMinute(hours.ClosesAt))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
