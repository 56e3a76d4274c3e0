package events

import (
	"time"

	"github.com/google/uuid"

	"authfront/internal/theme"
)

const (
	ThemeChanged  = "theme:changed"
	LocaleChanged = "locale:changed"
	NavChanged    = "nav:changed"
	NoticeShown   = "notice:shown"
)

// Event is the payload sent to the frontend
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}

type ThemeData struct {
	Mode    theme.Mode    `json:"mode"`
	Palette theme.Palette `json:"palette"`
}

type LocaleData struct {
	Language string `json:"language"`
}

type NavData struct {
	Route string `json:"route"`
}

type NoticeData struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func New(name string, data any) Event {
	return Event{
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: time.Now(),
		Data:      data,
	}
}

func NewThemeChanged(mode theme.Mode, palette theme.Palette) Event {
	return New(ThemeChanged, ThemeData{Mode: mode, Palette: palette})
}

func NewLocaleChanged(lang string) Event {
	return New(LocaleChanged, LocaleData{Language: lang})
}

func NewNavChanged(route string) Event {
	return New(NavChanged, NavData{Route: route})
}

func NewNoticeShown(title, message string) Event {
	return New(NoticeShown, NoticeData{Title: title, Message: message})
}
