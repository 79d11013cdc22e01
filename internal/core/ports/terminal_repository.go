package ports

import (
	"context"
	"iter"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
)

// ListTerminalsQuery carries the filter specs and the window to return.
type ListTerminalsQuery struct {
	Specs  []domain.TerminalSpec // combined with AND
	Offset int
	Limit  int
}

// TerminalRepository defines persistence operations for terminals.
// Lookups return domain.ErrTerminalNotFound when nothing matches; writes
// surface a duplicate shop id as domain.ErrShopIDExists.
type TerminalRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Terminal, error)
	FindByShopID(ctx context.Context, shopID string) (*domain.Terminal, error)
	// List returns one page of matching terminals and the number of matches
	// before pagination. An offset past the end yields an empty page.
	List(ctx context.Context, query ListTerminalsQuery) ([]*domain.Terminal, int64, error)
	Count(ctx context.Context, specs ...domain.TerminalSpec) (int64, error)
	Create(ctx context.Context, t *domain.Terminal) (*domain.Terminal, error)
	Update(ctx context.Context, id string, patch domain.TerminalPatch) (*domain.Terminal, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Iterate walks every terminal once in creation order.
	Iterate(ctx context.Context) iter.Seq2[*domain.Terminal, error]
}
