package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100

	// shopIDAttempts bounds retries when a generated shop id collides.
	shopIDAttempts = 5
)

// StatsCache abstracts the summary cache (Redis). Entries are keyed by a
// generation that Invalidate advances, so a summary computed while a write
// lands is stored under a generation nobody reads any more.
type StatsCache interface {
	// Get returns the current generation and its summary, nil on a miss.
	Get(ctx context.Context) (*domain.TerminalStats, int64, error)
	// Set stores stats under gen.
	Set(ctx context.Context, gen int64, stats *domain.TerminalStats) error
	Invalidate(ctx context.Context) error
}

type noopStatsCache struct{}

func (noopStatsCache) Get(context.Context) (*domain.TerminalStats, int64, error) { return nil, 0, nil }
func (noopStatsCache) Set(context.Context, int64, *domain.TerminalStats) error  { return nil }
func (noopStatsCache) Invalidate(context.Context) error                         { return nil }

type TerminalService struct {
	repo   ports.TerminalRepository
	cache  StatsCache
	logger zerolog.Logger
	newID  func() string
}

// NewTerminalService returns a TerminalService. cache may be nil.
func NewTerminalService(repo ports.TerminalRepository, cache StatsCache, logger zerolog.Logger) *TerminalService {
	if cache == nil {
		cache = noopStatsCache{}
	}
	return &TerminalService{repo: repo, cache: cache, logger: logger, newID: domain.GenerateShopID}
}

func (s *TerminalService) Get(ctx context.Context, id string) (*domain.Terminal, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TerminalService) GetByShopID(ctx context.Context, shopID string) (*domain.Terminal, error) {
	return s.repo.FindByShopID(ctx, shopID)
}

// List returns one page of terminals matching every supplied filter.
func (s *TerminalService) List(ctx context.Context, input ports.ListTerminalsInput) (*ports.ListTerminalsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	items, total, err := s.repo.List(ctx, ports.ListTerminalsQuery{
		Specs:  domain.BuildTerminalSpecs(input.Search, input.Model, input.ConnectionType),
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list terminals: %w", err)
	}
	if items == nil {
		items = []*domain.Terminal{}
	}

	return &ports.ListTerminalsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// totalPages is ceil(total/pageSize) with a floor of one page.
func totalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 1
	}
	return int(math.Ceil(float64(total) / float64(pageSize)))
}

// Create validates and stores a new terminal, generating a shop id when none
// is supplied.
func (s *TerminalService) Create(ctx context.Context, input ports.TerminalInput) (*domain.Terminal, error) {
	if err := validateTerminalFields(&input.ServiceName, &input.ShopID, input.MerchantCards, &input.Model); err != nil {
		return nil, err
	}
	if input.UnitCount < 0 {
		return nil, domain.ErrInvalidUnitCount
	}
	if input.UnitCount == 0 {
		input.UnitCount = 1
	}

	t := &domain.Terminal{
		ServiceName:        input.ServiceName,
		ShopID:             input.ShopID,
		OperatorFirstName:  input.OperatorFirstName,
		OperatorLastName:   input.OperatorLastName,
		OperatorPhone:      input.OperatorPhone,
		AlternateOperators: input.AlternateOperators,
		MerchantCards:      append([]domain.MerchantCard{}, input.MerchantCards...),
		Model:              input.Model,
		UnitCount:          input.UnitCount,
		ConnectionEthernet: input.ConnectionEthernet,
		Connection4G5G:     input.Connection4G5G,
		NetworkIPAddress:   input.NetworkIPAddress,
		NetworkMask:        input.NetworkMask,
		NetworkGateway:     input.NetworkGateway,
		BackofficeActive:   input.BackofficeActive,
		BackofficeEmail:    input.BackofficeEmail,
		CreatedAt:          time.Now().UTC(),
	}

	created, err := s.insert(ctx, t, input.ShopID == "")
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	s.logger.Info().Str("terminal_id", created.ID).Str("shop_id", created.ShopID).Msg("terminal created")
	return created, nil
}

// insert stores t. With generated set, the shop id is drawn here and redrawn
// on the unlikely collision; otherwise an existing shop id is a conflict.
func (s *TerminalService) insert(ctx context.Context, t *domain.Terminal, generated bool) (*domain.Terminal, error) {
	if !generated {
		if err := s.ensureShopIDFree(ctx, t.ShopID, ""); err != nil {
			return nil, err
		}
		return s.repo.Create(ctx, t)
	}

	for attempt := 1; ; attempt++ {
		t.ShopID = s.newID()
		created, err := s.repo.Create(ctx, t)
		if errors.Is(err, domain.ErrShopIDExists) && attempt < shopIDAttempts {
			s.logger.Warn().Str("shop_id", t.ShopID).Int("attempt", attempt).Msg("generated shop id collided")
			continue
		}
		return created, err
	}
}

// Update applies a partial update after running the same checks as Create
// on the supplied fields. A model, once set, can be changed but not cleared.
func (s *TerminalService) Update(ctx context.Context, id string, patch domain.TerminalPatch) (*domain.Terminal, error) {
	// A terminal always keeps a shop id; an empty one leaves it unchanged.
	if patch.ShopID != nil && *patch.ShopID == "" {
		patch.ShopID = nil
	}
	var cards []domain.MerchantCard
	if patch.MerchantCards != nil {
		cards = *patch.MerchantCards
	}
	if err := validateTerminalFields(patch.ServiceName, patch.ShopID, cards, patch.Model); err != nil {
		return nil, err
	}
	if patch.Model != nil && *patch.Model == "" {
		return nil, domain.ErrInvalidModel
	}
	if patch.UnitCount != nil && *patch.UnitCount < 1 {
		return nil, domain.ErrInvalidUnitCount
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.ShopID != nil {
		if err := s.ensureShopIDFree(ctx, *patch.ShopID, current.ID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, current.ID, patch)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	s.logger.Info().Str("terminal_id", updated.ID).Str("shop_id", updated.ShopID).Msg("terminal updated")
	return updated, nil
}

func (s *TerminalService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrTerminalNotFound
	}

	s.invalidateStats(ctx)
	s.logger.Info().Str("terminal_id", id).Msg("terminal deleted")
	return nil
}

// Stats computes the six dashboard counters, each as its own count.
func (s *TerminalService) Stats(ctx context.Context) (*domain.TerminalStats, error) {
	cached, gen, err := s.cache.Get(ctx)
	cacheable := err == nil
	if err != nil {
		s.logger.Warn().Err(err).Msg("stats cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	var stats domain.TerminalStats
	counters := []struct {
		dst   *int64
		specs []domain.TerminalSpec
	}{
		{&stats.Total, nil},
		{&stats.DeskCount, []domain.TerminalSpec{domain.ModelSpec{Model: domain.ModelDesk5000}}},
		{&stats.MoveCount, []domain.TerminalSpec{domain.ModelSpec{Model: domain.ModelMove5000}}},
		{&stats.EthernetCount, []domain.TerminalSpec{domain.ConnectionSpec{Type: domain.ConnectionEthernet}}},
		{&stats.MobileCount, []domain.TerminalSpec{domain.ConnectionSpec{Type: domain.Connection4G5G}}},
		{&stats.BackofficeActiveCount, []domain.TerminalSpec{domain.BackofficeSpec{}}},
	}
	for _, c := range counters {
		n, err := s.repo.Count(ctx, c.specs...)
		if err != nil {
			return nil, fmt.Errorf("terminal stats: %w", err)
		}
		*c.dst = n
	}

	if cacheable {
		if err := s.cache.Set(ctx, gen, &stats); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return &stats, nil
}

// ensureShopIDFree fails when shopID belongs to a terminal other than selfID.
func (s *TerminalService) ensureShopIDFree(ctx context.Context, shopID, selfID string) error {
	existing, err := s.repo.FindByShopID(ctx, shopID)
	switch {
	case err == nil:
		if existing.ID == selfID {
			return nil
		}
		return domain.ErrShopIDExists
	case errors.Is(err, domain.ErrTerminalNotFound):
		return nil
	default:
		return fmt.Errorf("lookup shop id: %w", err)
	}
}

func (s *TerminalService) invalidateStats(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("stats cache invalidation failed")
	}
}

// validateTerminalFields checks the constrained fields. Nil pointers mean the
// field is not being set.
func validateTerminalFields(serviceName, shopID *string, cards []domain.MerchantCard, model *domain.TerminalModel) error {
	if serviceName != nil {
		if *serviceName == "" {
			return domain.ErrServiceNameRequired
		}
		if utf8.RuneCountInString(*serviceName) > domain.ServiceNameMaxLen {
			return domain.ErrServiceNameTooLong
		}
	}
	if shopID != nil && utf8.RuneCountInString(*shopID) > domain.ShopIDMaxLen {
		return domain.ErrShopIDTooLong
	}
	if len(cards) > domain.MaxMerchantCards {
		return domain.ErrTooManyMerchantCards
	}
	if model != nil && !model.Valid() {
		return domain.ErrInvalidModel
	}
	return nil
}
