package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mhdRaihan321/api-expense/internal/core/domain"
	"github.com/mhdRaihan321/api-expense/internal/core/ports"
)

type stubAccountService struct {
	addFn    func(ctx context.Context, input ports.AddAccountInput) (*domain.User, error)
	updateFn func(ctx context.Context, input ports.UpdateAccountInput) error
}

func (s *stubAccountService) AddAccount(ctx context.Context, input ports.AddAccountInput) (*domain.User, error) {
	return s.addFn(ctx, input)
}

func (s *stubAccountService) UpdateAccount(ctx context.Context, input ports.UpdateAccountInput) error {
	return s.updateFn(ctx, input)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAccountHandler_AddUser_Success(t *testing.T) {
	stub := &stubAccountService{
		addFn: func(_ context.Context, input ports.AddAccountInput) (*domain.User, error) {
			if input.Name != "A" || input.Email != "a@b.com" || input.Password != "pw" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "u1", Name: input.Name, Email: input.Email, PasswordHash: "$2a$10$hash"}, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/addUser",
		`{"name":"A","email":"a@b.com","password":"pw"}`)

	if err := h.AddUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["id"] != "u1" || user["name"] != "A" || user["email"] != "a@b.com" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	body := rec.Body.String()
	if strings.Contains(body, "password") || strings.Contains(body, "$2a$") {
		t.Fatalf("response leaks credentials: %s", body)
	}
}

func TestAccountHandler_AddUser_MissingFields(t *testing.T) {
	stub := &stubAccountService{
		addFn: func(context.Context, ports.AddAccountInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/addUser",
		`{"name":"A"}`)

	_ = h.AddUser(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAccountHandler_AddUser_DuplicateEmail(t *testing.T) {
	stub := &stubAccountService{
		addFn: func(context.Context, ports.AddAccountInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/addUser",
		`{"name":"A","email":"a@b.com","password":"pw"}`)

	_ = h.AddUser(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAccountHandler_UpdateUser_Success(t *testing.T) {
	stub := &stubAccountService{
		updateFn: func(_ context.Context, input ports.UpdateAccountInput) error {
			if input.NewName != "B" || input.NewEmail != "" || input.NewPassword != "" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/updateUser",
		`{"email":"a@b.com","password":"pw","newname":"B"}`)

	if err := h.UpdateUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User updated successfully!") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAccountHandler_UpdateUser_WrongPassword(t *testing.T) {
	stub := &stubAccountService{
		updateFn: func(context.Context, ports.UpdateAccountInput) error {
			return domain.ErrIncorrectPassword
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/updateUser",
		`{"email":"a@b.com","password":"bad"}`)

	_ = h.UpdateUser(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAccountHandler_UpdateUser_NotFound(t *testing.T) {
	stub := &stubAccountService{
		updateFn: func(context.Context, ports.UpdateAccountInput) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/updateUser",
		`{"email":"ghost@b.com","password":"pw"}`)

	_ = h.UpdateUser(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAccountHandler_UpdateUser_MissingCredentials(t *testing.T) {
	stub := &stubAccountService{
		updateFn: func(context.Context, ports.UpdateAccountInput) error {
			t.Fatalf("service should not be called")
			return nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/updateUser",
		`{"newname":"B"}`)

	_ = h.UpdateUser(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
