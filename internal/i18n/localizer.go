// Package i18n holds the current UI language and translates keys against the
// embedded en/tr tables.
package i18n

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

const DefaultLanguage = "en"

// SupportedLanguages is ordered; Toggle cycles through it.
var SupportedLanguages = []string{"en", "tr"}

// Localizer is created once at startup and shared by every screen.
type Localizer struct {
	mu        sync.RWMutex
	lang      string
	catalog   Catalog
	supported []string
	nextID    int
	listeners map[int]func(string)
}

// New starts in the supported language closest to deviceLocale, or in
// DefaultLanguage when nothing matches.
func New(catalog Catalog, deviceLocale string) *Localizer {
	return &Localizer{
		lang:      ResolveLocale(deviceLocale, SupportedLanguages, DefaultLanguage),
		catalog:   catalog,
		supported: SupportedLanguages,
		listeners: make(map[int]func(string)),
	}
}

// NewDefault loads the embedded catalog.
func NewDefault(deviceLocale string) (*Localizer, error) {
	cat, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return New(cat, deviceLocale), nil
}

func (l *Localizer) Language() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

func (l *Localizer) Supported() []string {
	return append([]string(nil), l.supported...)
}

// ChangeLanguage switches to code when it is supported. Anything else is
// ignored. It returns the language in effect afterwards.
func (l *Localizer) ChangeLanguage(code string) string {
	code = baseLanguage(code)

	l.mu.Lock()
	if !l.isSupported(code) || code == l.lang {
		lang := l.lang
		l.mu.Unlock()
		return lang
	}
	l.lang = code
	listeners := l.snapshot()
	l.mu.Unlock()

	for _, fn := range listeners {
		fn(code)
	}
	return code
}

// Toggle moves to the next supported language (en -> tr -> en).
func (l *Localizer) Toggle() string {
	cur := l.Language()
	next := l.supported[0]
	for i, code := range l.supported {
		if code == cur {
			next = l.supported[(i+1)%len(l.supported)]
			break
		}
	}
	return l.ChangeLanguage(next)
}

// T translates key in the current language, falling back to the default
// language and then to the key itself. {{name}} placeholders are filled from
// vars.
func (l *Localizer) T(key string, vars ...map[string]any) string {
	return l.TIn(l.Language(), key, vars...)
}

// TIn translates key in lang without touching the current language.
func (l *Localizer) TIn(lang, key string, vars ...map[string]any) string {
	text, ok := l.catalog[lang][key]
	if !ok {
		text, ok = l.catalog[DefaultLanguage][key]
	}
	if !ok {
		return key
	}
	if len(vars) == 0 {
		return text
	}
	return interpolate(text, vars[0])
}

// Subscribe registers fn for language changes and returns its remover.
func (l *Localizer) Subscribe(fn func(lang string)) (unsubscribe func()) {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.listeners, id)
			l.mu.Unlock()
		})
	}
}

func (l *Localizer) isSupported(code string) bool {
	for _, s := range l.supported {
		if s == code {
			return true
		}
	}
	return false
}

func (l *Localizer) snapshot() []func(string) {
	out := make([]func(string), 0, len(l.listeners))
	for id := 0; id < l.nextID; id++ {
		if fn, ok := l.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

// ResolveLocale maps a host locale ("tr_TR.UTF-8", "en-US", "tr") onto one of
// supported, or def when the match is unusable.
func ResolveLocale(device string, supported []string, def string) string {
	device = normalizeLocale(device)
	if device == "" {
		return def
	}
	tag, err := language.Parse(device)
	if err != nil {
		return def
	}
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tags = append(tags, language.Make(s))
	}
	_, idx, conf := language.NewMatcher(tags).Match(tag)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		return def
	}
	return supported[idx]
}

// normalizeLocale strips POSIX codeset and modifier suffixes and turns "_"
// into "-".
func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}

func baseLanguage(code string) string {
	code = strings.ToLower(normalizeLocale(code))
	if i := strings.IndexByte(code, '-'); i >= 0 {
		code = code[:i]
	}
	return code
}

func interpolate(text string, vars map[string]any) string {
	var b strings.Builder
	for {
		start := strings.Index(text, "{{")
		if start < 0 {
			break
		}
		end := strings.Index(text[start+2:], "}}")
		if end < 0 {
			break
		}
		end += start + 2
		name := strings.TrimSpace(text[start+2 : end])
		b.WriteString(text[:start])
		if v, ok := vars[name]; ok {
			b.WriteString(fmt.Sprint(v))
		} else {
			b.WriteString(text[start : end+2])
		}
		text = text[end+2:]
	}
	b.WriteString(text)
	return b.String()
}
