package service

import (
	"context"
	"iter"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  []*domain.User
	nextID int

	// foldIDs makes FindByID case-insensitive, as ObjectID parsing would be.
	foldIDs bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) find(match func(*domain.User) bool) (*domain.User, error) {
	for _, u := range r.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool {
		return u.ID == id || (r.foldIDs && strings.EqualFold(u.ID, id))
	})
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Username == username })
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Email != "" && u.Email == email })
}

func (r *stubUserRepo) List(_ context.Context, offset, limit int) ([]*domain.User, error) {
	out := []*domain.User{}
	for i, u := range r.users {
		if i < offset {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, cloneUser(u))
	}
	return out, nil
}

// Create enforces the same unique keys as the Mongo indexes.
func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUsernameExists
		}
		if user.Email != "" && u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = "u" + strconv.Itoa(r.nextID)
	r.users = append(r.users, stored)
	return cloneUser(stored), nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID != id {
			continue
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.PasswordHash != nil {
			u.PasswordHash = *patch.PasswordHash
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.IsActive != nil {
			u.IsActive = *patch.IsActive
		}
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ---------------------------------------------------------------------------
// In-memory terminal repository
// ---------------------------------------------------------------------------

type stubTerminalRepo struct {
	terminals []*domain.Terminal
	nextID    int
	counts    int   // number of Count calls
	iterErr   error // if set, Iterate yields it after the stored terminals

	// afterCount runs after each Count has computed its result.
	afterCount func()
	// foldIDs makes FindByID case-insensitive, as ObjectID parsing would be.
	foldIDs bool
}

func newStubTerminalRepo() *stubTerminalRepo {
	return &stubTerminalRepo{}
}

func cloneTerminal(t *domain.Terminal) *domain.Terminal {
	clone := *t
	clone.MerchantCards = append([]domain.MerchantCard(nil), t.MerchantCards...)
	return &clone
}

func (r *stubTerminalRepo) FindByID(_ context.Context, id string) (*domain.Terminal, error) {
	for _, t := range r.terminals {
		if t.ID == id || (r.foldIDs && strings.EqualFold(t.ID, id)) {
			return cloneTerminal(t), nil
		}
	}
	return nil, domain.ErrTerminalNotFound
}

func (r *stubTerminalRepo) FindByShopID(_ context.Context, shopID string) (*domain.Terminal, error) {
	for _, t := range r.terminals {
		if t.ShopID == shopID {
			return cloneTerminal(t), nil
		}
	}
	return nil, domain.ErrTerminalNotFound
}

// List evaluates the specs the same way the Mongo translation does.
func (r *stubTerminalRepo) List(_ context.Context, q ports.ListTerminalsQuery) ([]*domain.Terminal, int64, error) {
	var matched []*domain.Terminal
	for _, t := range r.terminals {
		if domain.MatchAll(t, q.Specs) {
			matched = append(matched, cloneTerminal(t))
		}
	}
	total := int64(len(matched))
	if q.Offset >= len(matched) {
		return []*domain.Terminal{}, total, nil
	}
	end := min(q.Offset+q.Limit, len(matched))
	return matched[q.Offset:end], total, nil
}

func (r *stubTerminalRepo) Count(_ context.Context, specs ...domain.TerminalSpec) (int64, error) {
	r.counts++
	var n int64
	for _, t := range r.terminals {
		if domain.MatchAll(t, specs) {
			n++
		}
	}
	if r.afterCount != nil {
		r.afterCount()
	}
	return n, nil
}

func (r *stubTerminalRepo) Create(_ context.Context, t *domain.Terminal) (*domain.Terminal, error) {
	for _, existing := range r.terminals {
		if existing.ShopID == t.ShopID {
			return nil, domain.ErrShopIDExists
		}
	}
	r.nextID++
	stored := cloneTerminal(t)
	stored.ID = "t" + strconv.Itoa(r.nextID)
	r.terminals = append(r.terminals, stored)
	return cloneTerminal(stored), nil
}

func (r *stubTerminalRepo) Update(_ context.Context, id string, patch domain.TerminalPatch) (*domain.Terminal, error) {
	for _, t := range r.terminals {
		if t.ID != id {
			continue
		}
		if patch.ShopID != nil {
			for _, other := range r.terminals {
				if other.ID != id && other.ShopID == *patch.ShopID {
					return nil, domain.ErrShopIDExists
				}
			}
		}
		patch.Apply(t)
		return cloneTerminal(t), nil
	}
	return nil, domain.ErrTerminalNotFound
}

func (r *stubTerminalRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, t := range r.terminals {
		if t.ID == id {
			r.terminals = append(r.terminals[:i], r.terminals[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *stubTerminalRepo) Iterate(_ context.Context) iter.Seq2[*domain.Terminal, error] {
	return func(yield func(*domain.Terminal, error) bool) {
		for _, t := range r.terminals {
			if !yield(cloneTerminal(t), nil) {
				return
			}
		}
		if r.iterErr != nil {
			yield(nil, r.iterErr)
		}
	}
}

// ---------------------------------------------------------------------------
// Stats cache stub
// ---------------------------------------------------------------------------

type stubStatsCache struct {
	gen         int64
	entries     map[int64]domain.TerminalStats
	sets        int
	invalidated int
}

func newStubStatsCache() *stubStatsCache {
	return &stubStatsCache{entries: map[int64]domain.TerminalStats{}}
}

func (c *stubStatsCache) Get(context.Context) (*domain.TerminalStats, int64, error) {
	stats, ok := c.entries[c.gen]
	if !ok {
		return nil, c.gen, nil
	}
	return &stats, c.gen, nil
}

func (c *stubStatsCache) Set(_ context.Context, gen int64, stats *domain.TerminalStats) error {
	c.entries[gen] = *stats
	c.sets++
	return nil
}

func (c *stubStatsCache) Invalidate(context.Context) error {
	c.gen++
	c.invalidated++
	return nil
}
