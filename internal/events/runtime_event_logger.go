package events

import (
	"context"
	"encoding/json"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

func logRuntimeEvent(ctx context.Context, evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		runtime.LogError(ctx, "events: failed to marshal "+evt.Name+": "+err.Error())
		return
	}

	if evt.Name == NoticeShown {
		runtime.LogInfo(ctx, string(data))
		return
	}
	runtime.LogDebug(ctx, string(data))
}
