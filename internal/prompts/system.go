package prompts

import (
	"context"

	"github.com/JaimeStill/promptbook/pkg/lifecycle"
	"github.com/JaimeStill/promptbook/pkg/pagination"
)

// System defines the public contract for prompt library operations.
// Mutations update memory before returning and persist the whole collection
// in the background. Every operation except Hydrate returns ErrNotReady until
// hydration has succeeded.
type System interface {
	Handler(maxBodyBytes int64) *Handler

	// Start schedules hydration as a startup hook and runs the background writer.
	Start(lc *lifecycle.Coordinator) error
	// Hydrate loads the stored collection, seeding it when none exists.
	// Subsequent calls are no-ops.
	Hydrate(ctx context.Context) error
	Ready() bool

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Prompt], error)

	Find(ctx context.Context, id string) (*Prompt, error)
	History(ctx context.Context, id string) ([]Version, error)
	Tags(ctx context.Context) ([]string, error)

	Add(ctx context.Context, cmd CreateCommand) (*Prompt, error)
	Update(ctx context.Context, id string, cmd UpdateCommand) (*Prompt, error)
	Delete(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) (*Prompt, error)
	Restore(ctx context.Context, id string) (*Prompt, error)

	// DeleteAll removes the stored collection and then clears memory.
	// If the store cannot remove it, memory is left unchanged and the
	// returned error wraps ErrStorage.
	DeleteAll(ctx context.Context) error

	// Flush waits for pending background writes.
	Flush(ctx context.Context) error
}
