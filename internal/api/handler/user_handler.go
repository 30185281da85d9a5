package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wallyverse/social-exchange/internal/api/metrics"
	"github.com/wallyverse/social-exchange/internal/core/domain"
	"github.com/wallyverse/social-exchange/internal/core/ports"
)

// UserHandler handles HTTP requests for the account registry and the follow
// graph.
type UserHandler struct {
	accounts ports.AccountService
	follows  ports.FollowService
}

func NewUserHandler(accounts ports.AccountService, follows ports.FollowService) *UserHandler {
	return &UserHandler{accounts: accounts, follows: follows}
}

// Create handles POST /v1/users.
//
// @Summary      Open a new account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Account details and optional seed emails"
// @Success      201   {object}  createUserResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role := domain.RoleType(req.RoleType)
	id, err := h.accounts.CreateAccount(c.Request().Context(), ports.CreateAccountInput{
		Email:      req.Email,
		Profile:    toProfileInput(req.Profile),
		RoleType:   role,
		SeedEmails: req.SeedEmails,
	})
	if err != nil {
		return err
	}

	if role == "" {
		role = domain.RoleUser
	}
	metrics.AccountsCreatedTotal.WithLabelValues(string(role)).Inc()

	return c.JSON(http.StatusCreated, createUserResponse{ID: id})
}

// UpdateProfile handles PATCH /v1/users/:user_id.
//
// @Summary      Complete or overwrite an account profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user_id  path      string                true  "Account id"
// @Param        body     body      updateProfileRequest  true  "Profile fields"
// @Success      200      {object}  accountResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/users/{user_id} [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	snapshot, err := h.accounts.UpdateProfile(c.Request().Context(), c.Param("user_id"), ports.ProfileInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Dob:        req.Dob,
		Country:    req.Country,
		Zipcode:    req.Zipcode,
		Profession: req.Profession,
		Company:    req.Company,
		Links:      req.Links,
		Tagline:    req.Tagline,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAccountResponse(snapshot))
}

// LookupByEmail handles GET /v1/users/email/:email.
//
// @Summary      Resolve an account id by email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "Registered email address"
// @Success      200    {object}  lookupUserResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/users/email/{email} [get]
func (h *UserHandler) LookupByEmail(c echo.Context) error {
	id, err := h.accounts.LookupIDByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lookupUserResponse{ID: id})
}

// Follow handles POST /v1/users/:user_id/follow/:target_id.
//
// @Summary      Follow another account
// @Tags         users
// @Produce      json
// @Param        user_id    path      string  true  "Follower account id"
// @Param        target_id  path      string  true  "Account id to follow"
// @Success      201        {object}  followResponse
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Failure      409        {object}  errorResponse
// @Router       /v1/users/{user_id}/follow/{target_id} [post]
func (h *UserHandler) Follow(c echo.Context) error {
	followerID := c.Param("user_id")
	followingID := c.Param("target_id")

	if err := h.follows.Follow(c.Request().Context(), followerID, followingID); err != nil {
		return err
	}

	metrics.FollowsTotal.Inc()

	return c.JSON(http.StatusCreated, followResponse{
		FollowerID:  followerID,
		FollowingID: followingID,
	})
}

// UpgradeToInvestor handles POST /v1/users/:user_id/investor.
//
// @Summary      Promote an account to investor
// @Tags         users
// @Produce      json
// @Param        user_id  path      string  true  "Account id"
// @Success      200      {object}  upgradeInvestorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/users/{user_id}/investor [post]
func (h *UserHandler) UpgradeToInvestor(c echo.Context) error {
	upgraded, err := h.accounts.UpgradeToInvestor(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, upgradeInvestorResponse{Upgraded: upgraded})
}

func toProfileInput(p profileRequest) ports.ProfileInput {
	return ports.ProfileInput{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Dob:        p.Dob,
		Country:    p.Country,
		Zipcode:    p.Zipcode,
		Profession: p.Profession,
		Company:    p.Company,
		Links:      p.Links,
		Tagline:    p.Tagline,
	}
}

func toAccountResponse(s *ports.AccountSnapshot) accountResponse {
	return accountResponse{
		ID:    s.ID,
		Email: s.Email,
		Profile: profileResponse{
			FirstName:  s.Profile.FirstName,
			LastName:   s.Profile.LastName,
			Dob:        s.Profile.Dob,
			Country:    s.Profile.Country,
			Zipcode:    s.Profile.Zipcode,
			Profession: s.Profile.Profession,
			Company:    s.Profile.Company,
			Links:      s.Profile.Links,
			Tagline:    s.Profile.Tagline,
		},
		RoleType:     string(s.RoleType),
		Status:       string(s.Status),
		DataIncome:   s.DataIncome,
		FollowIncome: s.FollowIncome,
		WallyWallet:  s.WallyWallet,
		AdminRevenue: s.AdminRevenue,
		Subscription: s.Subscription,
	}
}
