package ports

import (
	"context"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
)

// TerminalInput carries the fields of a new terminal. An empty ShopID asks
// the service to generate one; a zero UnitCount means the default of 1.
type TerminalInput struct {
	ServiceName        string
	ShopID             string
	OperatorFirstName  string
	OperatorLastName   string
	OperatorPhone      string
	AlternateOperators string
	MerchantCards      []domain.MerchantCard
	Model              domain.TerminalModel
	UnitCount          int
	ConnectionEthernet bool
	Connection4G5G     bool
	NetworkIPAddress   string
	NetworkMask        string
	NetworkGateway     string
	BackofficeActive   bool
	BackofficeEmail    string
}

// ListTerminalsInput carries all parameters for the list endpoint.
type ListTerminalsInput struct {
	Page           int // 1-based
	PageSize       int
	Search         string
	Model          string
	ConnectionType string
}

// ListTerminalsResult is returned by ListTerminals.
type ListTerminalsResult struct {
	Items      []*domain.Terminal
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// TerminalService defines use-case operations for terminals.
type TerminalService interface {
	Get(ctx context.Context, id string) (*domain.Terminal, error)
	GetByShopID(ctx context.Context, shopID string) (*domain.Terminal, error)
	List(ctx context.Context, input ListTerminalsInput) (*ListTerminalsResult, error)
	Create(ctx context.Context, input TerminalInput) (*domain.Terminal, error)
	Update(ctx context.Context, id string, patch domain.TerminalPatch) (*domain.Terminal, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*domain.TerminalStats, error)
}
