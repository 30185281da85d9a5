package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wallyverse/social-exchange/internal/api/metrics"
	"github.com/wallyverse/social-exchange/internal/core/domain"
	"github.com/wallyverse/social-exchange/internal/core/ports"
)

// InvestorHandler handles HTTP requests for the share market and the
// investor side of the currency desk.
type InvestorHandler struct {
	market   ports.MarketService
	currency ports.CurrencyService
}

func NewInvestorHandler(market ports.MarketService, currency ports.CurrencyService) *InvestorHandler {
	return &InvestorHandler{market: market, currency: currency}
}

// TradeShares handles POST /v1/investors/:user_id/shares/trade.
//
// @Summary      Buy or sell a share
// @Tags         investors
// @Accept       json
// @Produce      json
// @Param        user_id  path      string              true  "Acting investor account id"
// @Param        body     body      tradeSharesRequest  true  "Trade order"
// @Success      200      {object}  tradeSharesResponse
// @Failure      400      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/investors/{user_id}/shares/trade [post]
func (h *InvestorHandler) TradeShares(c echo.Context) error {
	var req tradeSharesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.market.TradeShares(c.Request().Context(), ports.TradeSharesInput{
		ActingUserID: c.Param("user_id"),
		Action:       domain.TradeAction(req.Action),
		ShareID:      req.ShareID,
		Price:        req.Price,
	})
	if err != nil {
		metrics.TradeErrorsTotal.WithLabelValues("shares", errorKind(err)).Inc()
		return err
	}

	metrics.TradesTotal.WithLabelValues("shares", req.Action).Inc()

	return c.JSON(http.StatusOK, tradeSharesResponse{
		Action:  req.Action,
		ShareID: req.ShareID,
		Price:   req.Price,
	})
}

// OwnedShare handles GET /v1/investors/:user_id/share.
//
// @Summary      Get the id of the account's own share
// @Tags         investors
// @Produce      json
// @Param        user_id  path      string  true  "Account id"
// @Success      200      {object}  ownedShareResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/investors/{user_id}/share [get]
func (h *InvestorHandler) OwnedShare(c echo.Context) error {
	shareID, err := h.market.OwnedShareID(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ownedShareResponse{ShareID: shareID})
}

// TradeCurrency handles POST /v1/investors/:user_id/currency/trade.
//
// @Summary      Buy or sell Wallys against data income
// @Tags         investors
// @Accept       json
// @Produce      json
// @Param        user_id  path      string                true  "Acting investor account id"
// @Param        body     body      tradeCurrencyRequest  true  "Currency order"
// @Success      200      {object}  tradeCurrencyResponse
// @Failure      400      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/investors/{user_id}/currency/trade [post]
func (h *InvestorHandler) TradeCurrency(c echo.Context) error {
	var req tradeCurrencyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.currency.TradeCurrency(c.Request().Context(), ports.CurrencyTradeInput{
		ActingUserID: c.Param("user_id"),
		Action:       domain.TradeAction(req.Action),
		Amount:       req.Amount,
	})
	if err != nil {
		metrics.TradeErrorsTotal.WithLabelValues("currency", errorKind(err)).Inc()
		return err
	}

	metrics.TradesTotal.WithLabelValues("currency", req.Action).Inc()

	return c.JSON(http.StatusOK, tradeCurrencyResponse{
		Action: req.Action,
		Amount: req.Amount,
	})
}

// errorKind folds an error into the label value of its kind.
func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrStorage):
		return "storage"
	default:
		return "internal"
	}
}
