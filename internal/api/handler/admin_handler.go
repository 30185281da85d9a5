package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wallyverse/social-exchange/internal/api/metrics"
	"github.com/wallyverse/social-exchange/internal/core/domain"
	"github.com/wallyverse/social-exchange/internal/core/ports"
)

// AdminHandler handles HTTP requests for platform administration: policies,
// account freezing, the rate quote desk, and the manual issuance trigger.
type AdminHandler struct {
	accounts ports.AccountService
	currency ports.CurrencyService
	policies ports.PolicyService
}

func NewAdminHandler(accounts ports.AccountService, currency ports.CurrencyService, policies ports.PolicyService) *AdminHandler {
	return &AdminHandler{accounts: accounts, currency: currency, policies: policies}
}

// SetMinimumFollowCost handles PUT /v1/admin/policies/minimum-follow-cost.
//
// @Summary      Set the follow-income distribution threshold
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      setMinimumFollowCostRequest  true  "New threshold"
// @Success      200   {object}  minimumFollowCostResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/admin/policies/minimum-follow-cost [put]
func (h *AdminHandler) SetMinimumFollowCost(c echo.Context) error {
	var req setMinimumFollowCostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.policies.SetMinimumFollowCost(c.Request().Context(), req.Value); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, minimumFollowCostResponse{Value: req.Value})
}

// QuoteCurrency handles POST /v1/admin/currency/quote.
//
// @Summary      Price a Wally amount at the platform rates
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminQuoteRequest  true  "Amount to price"
// @Success      200   {object}  adminQuoteResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/admin/currency/quote [post]
func (h *AdminHandler) QuoteCurrency(c echo.Context) error {
	var req adminQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quote, err := h.currency.QuoteAdminTrade(ports.AdminQuoteInput{
		Action: domain.TradeAction(req.Action),
		Wallys: req.Wallys,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminQuoteResponse{
		Action: string(quote.Action),
		Wallys: quote.Wallys,
		Rate:   quote.Rate,
		Value:  quote.Value,
	})
}

// FreezeAccount handles POST /v1/admin/users/:user_id/freeze.
//
// @Summary      Freeze an account
// @Tags         admin
// @Produce      json
// @Param        user_id  path      string  true  "Account id"
// @Success      200      {object}  freezeAccountResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/admin/users/{user_id}/freeze [post]
func (h *AdminHandler) FreezeAccount(c echo.Context) error {
	userID := c.Param("user_id")
	if err := h.accounts.FreezeAccount(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, freezeAccountResponse{
		ID:     userID,
		Status: string(domain.StatusInactive),
	})
}

// IssueIncome handles POST /v1/admin/income/issue — the manual counterpart of
// the scheduled sweep. The Redis period claim still applies, so triggering it
// after the scheduler ran reports skipped.
//
// @Summary      Run the periodic income sweep now
// @Tags         admin
// @Produce      json
// @Success      200  {object}  issueIncomeResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/admin/income/issue [post]
func (h *AdminHandler) IssueIncome(c echo.Context) error {
	start := time.Now()

	result, err := h.currency.IssuePeriodicIncome(c.Request().Context())
	metrics.ObserveSweep(time.Since(start), result.Processed, result.Failed, result.Skipped)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, issueIncomeResponse{
		Processed: result.Processed,
		Failed:    result.Failed,
		Skipped:   result.Skipped,
	})
}
