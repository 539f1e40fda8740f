package theme

import (
	"context"

	"github.com/JaimeStill/promptbook/pkg/lifecycle"
)

// System holds the appearance preference. Reads never wait on the
// backing store; SetTheme applies in memory and persists in the background.
type System interface {
	Handler(maxBodyBytes int64) *Handler

	// Start schedules hydration as a startup hook and runs the background writer.
	Start(lc *lifecycle.Coordinator) error
	// Hydrate loads the stored preference. Unknown stored values are ignored.
	Hydrate(ctx context.Context) error

	Theme() Theme
	SetTheme(t Theme) error
	// IsDark applies Effective to the current preference.
	IsDark(host Appearance) bool

	// Flush waits for a pending background write.
	Flush(ctx context.Context) error
}
