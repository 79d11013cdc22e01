package handler

import (
	"context"
	"errors"
	"io"
	"iter"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tpemanager/tpe-manager/internal/api/middleware"
	"github.com/tpemanager/tpe-manager/internal/core/domain"
	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

var errNotStubbed = errors.New("not stubbed")

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.User, error) {
	return nil, errNotStubbed
}

func (s *stubAuthService) Authorize(*domain.User, ...string) error { return nil }

type stubUserService struct {
	listFn   func(ctx context.Context, offset, limit int) ([]*domain.User, error)
	createFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	deleteFn func(ctx context.Context, actor *domain.User, id string) error
}

func (s *stubUserService) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return s.listFn(ctx, offset, limit)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubUserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	return s.deleteFn(ctx, actor, id)
}

type stubTerminalService struct {
	listFn   func(ctx context.Context, input ports.ListTerminalsInput) (*ports.ListTerminalsResult, error)
	createFn func(ctx context.Context, input ports.TerminalInput) (*domain.Terminal, error)
	updateFn func(ctx context.Context, id string, patch domain.TerminalPatch) (*domain.Terminal, error)
	getFn    func(ctx context.Context, id string) (*domain.Terminal, error)
	deleteFn func(ctx context.Context, id string) error
	statsFn  func(ctx context.Context) (*domain.TerminalStats, error)
}

func (s *stubTerminalService) Get(ctx context.Context, id string) (*domain.Terminal, error) {
	return s.getFn(ctx, id)
}

func (s *stubTerminalService) GetByShopID(context.Context, string) (*domain.Terminal, error) {
	return nil, errNotStubbed
}

func (s *stubTerminalService) List(ctx context.Context, input ports.ListTerminalsInput) (*ports.ListTerminalsResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubTerminalService) Create(ctx context.Context, input ports.TerminalInput) (*domain.Terminal, error) {
	return s.createFn(ctx, input)
}

func (s *stubTerminalService) Update(ctx context.Context, id string, patch domain.TerminalPatch) (*domain.Terminal, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubTerminalService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubTerminalService) Stats(ctx context.Context) (*domain.TerminalStats, error) {
	return s.statsFn(ctx)
}

type stubReports struct {
	headers []string
	rows    []ports.ExportRow
	err     error
}

func (r *stubReports) ExportHeaders() []string { return r.headers }

func (r *stubReports) ExportRows(context.Context) iter.Seq2[ports.ExportRow, error] {
	return func(yield func(ports.ExportRow, error) bool) {
		for _, row := range r.rows {
			if !yield(row, nil) {
				return
			}
		}
		if r.err != nil {
			yield(nil, r.err)
		}
	}
}

// csvEncoder writes comma-joined cells, one line per row.
type csvEncoder struct{}

func (csvEncoder) Encode(w io.Writer, headers []string, rows iter.Seq2[ports.ExportRow, error]) error {
	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	b.WriteString("\n")
	for row, err := range rows {
		if err != nil {
			return err
		}
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = toString(v)
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return "?"
}

// newContext builds an echo context with the validator registered, optionally
// authenticated as user.
func newContext(method, target, body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.UserKey, user)
	}
	return c, rec
}
