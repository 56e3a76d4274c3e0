// Package theme holds the light/dark state shared by every screen.
package theme

import (
	"strings"
	"sync"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Listener is called after every toggle with the new mode and palette.
type Listener func(Mode, Palette)

// Provider owns the current mode. It is created once at startup and handed
// to whatever renders screens.
type Provider struct {
	mu        sync.RWMutex
	mode      Mode
	nextID    int
	listeners map[int]Listener
}

// NewProvider starts in dark mode when the device reports "dark" and in light
// mode otherwise, including when it reports nothing.
func NewProvider(devicePreference string) *Provider {
	mode := Light
	if strings.EqualFold(strings.TrimSpace(devicePreference), string(Dark)) {
		mode = Dark
	}
	return &Provider{mode: mode, listeners: make(map[int]Listener)}
}

func (p *Provider) Mode() Mode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mode
}

func (p *Provider) IsDark() bool {
	return p.Mode() == Dark
}

func (p *Provider) Palette() Palette {
	return PaletteFor(p.Mode())
}

// Toggle flips the mode and notifies every subscriber.
func (p *Provider) Toggle() Mode {
	p.mu.Lock()
	if p.mode == Dark {
		p.mode = Light
	} else {
		p.mode = Dark
	}
	mode := p.mode
	listeners := p.snapshot()
	p.mu.Unlock()

	palette := PaletteFor(mode)
	for _, fn := range listeners {
		fn(mode, palette)
	}
	return mode
}

// Subscribe registers fn and returns a func that removes it.
func (p *Provider) Subscribe(fn Listener) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.listeners, id)
			p.mu.Unlock()
		})
	}
}

// snapshot must be called with p.mu held. Listeners run in subscription order.
func (p *Provider) snapshot() []Listener {
	out := make([]Listener, 0, len(p.listeners))
	for id := 0; id < p.nextID; id++ {
		if fn, ok := p.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
