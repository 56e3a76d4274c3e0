package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit delivers evt to the frontend. It does nothing until a shell installs
// an emitter.
var Emit = func(ctx context.Context, evt Event) {}

// EnableRuntimeEmitter routes events through the Wails runtime. ctx passed to
// Emit must then be the context Wails handed to OnStartup.
func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, evt Event) {
		runtime.EventsEmit(ctx, evt.Name, evt)
		logRuntimeEvent(ctx, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, evt Event)) {
	if f == nil {
		Emit = func(context.Context, Event) {}
		return
	}
	Emit = f
}
