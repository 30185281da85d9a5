package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wallyverse/social-exchange/internal/core/domain"
	"github.com/wallyverse/social-exchange/internal/core/ports"
)

type stubCurrencyService struct {
	issueFn func(ctx context.Context) (ports.IssueIncomeResult, error)
	tradeFn func(ctx context.Context, input ports.CurrencyTradeInput) error
	quoteFn func(input ports.AdminQuoteInput) (*ports.AdminQuote, error)
}

func (s *stubCurrencyService) IssuePeriodicIncome(ctx context.Context) (ports.IssueIncomeResult, error) {
	return s.issueFn(ctx)
}

func (s *stubCurrencyService) TradeCurrency(ctx context.Context, input ports.CurrencyTradeInput) error {
	return s.tradeFn(ctx, input)
}

func (s *stubCurrencyService) QuoteAdminTrade(input ports.AdminQuoteInput) (*ports.AdminQuote, error) {
	return s.quoteFn(input)
}

type stubPolicyService struct {
	setFn func(ctx context.Context, value float64) error
	getFn func(ctx context.Context) (float64, error)
}

func (s *stubPolicyService) SetMinimumFollowCost(ctx context.Context, value float64) error {
	return s.setFn(ctx, value)
}

func (s *stubPolicyService) MinimumFollowCost(ctx context.Context) (float64, error) {
	return s.getFn(ctx)
}

func TestAdminHandler_SetMinimumFollowCost(t *testing.T) {
	e := newTestEcho()
	policies := &stubPolicyService{
		setFn: func(ctx context.Context, value float64) error {
			if value != 250 {
				t.Fatalf("value = %v, want 250", value)
			}
			return nil
		},
	}
	handler := NewAdminHandler(&stubAccountService{}, &stubCurrencyService{}, policies)

	req := httptest.NewRequest(http.MethodPut, "/v1/admin/policies/minimum-follow-cost", strings.NewReader(`{"value":250}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SetMinimumFollowCost(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminHandler_SetMinimumFollowCost_Negative(t *testing.T) {
	e := newTestEcho()
	handler := NewAdminHandler(&stubAccountService{}, &stubCurrencyService{}, &stubPolicyService{})

	req := httptest.NewRequest(http.MethodPut, "/v1/admin/policies/minimum-follow-cost", strings.NewReader(`{"value":-5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SetMinimumFollowCost(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAdminHandler_QuoteCurrency(t *testing.T) {
	e := newTestEcho()
	currency := &stubCurrencyService{
		quoteFn: func(input ports.AdminQuoteInput) (*ports.AdminQuote, error) {
			return &ports.AdminQuote{
				Action: input.Action,
				Wallys: input.Wallys,
				Rate:   domain.WallyBuyRate,
				Value:  input.Wallys * domain.WallyBuyRate,
			}, nil
		},
	}
	handler := NewAdminHandler(&stubAccountService{}, currency, &stubPolicyService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/currency/quote", strings.NewReader(`{"action":"BUY","wallys":1000}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.QuoteCurrency(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["rate"] != domain.WallyBuyRate || resp["value"] != 9.0 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAdminHandler_FreezeAccount(t *testing.T) {
	e := newTestEcho()
	accounts := &stubAccountService{
		freezeFn: func(ctx context.Context, userID string) error {
			if userID != "u1" {
				t.Fatalf("userID = %s, want u1", userID)
			}
			return nil
		},
	}
	handler := NewAdminHandler(accounts, &stubCurrencyService{}, &stubPolicyService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/users/u1/freeze", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("u1")

	if err := handler.FreezeAccount(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != string(domain.StatusInactive) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAdminHandler_IssueIncome(t *testing.T) {
	e := newTestEcho()
	currency := &stubCurrencyService{
		issueFn: func(ctx context.Context) (ports.IssueIncomeResult, error) {
			return ports.IssueIncomeResult{Processed: 7, Failed: 1}, nil
		},
	}
	handler := NewAdminHandler(&stubAccountService{}, currency, &stubPolicyService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/income/issue", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.IssueIncome(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["processed"] != 7.0 || resp["failed"] != 1.0 || resp["skipped"] != false {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
