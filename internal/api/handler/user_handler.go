package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/academic-records-api/internal/api/metrics"
	"github.com/classtrack/academic-records-api/internal/auth"
	"github.com/classtrack/academic-records-api/internal/core/domain"
	"github.com/classtrack/academic-records-api/internal/core/ports"
)

// UserHandler handles account and session endpoints.
type UserHandler struct {
	users   ports.UserService
	tokens  *auth.TokenManager
	cookies *auth.CookieManager
}

func NewUserHandler(users ports.UserService, tokens *auth.TokenManager, cookies *auth.CookieManager) *UserHandler {
	return &UserHandler{users: users, tokens: tokens, cookies: cookies}
}

// --- Request / Response types ---

type signUpRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	DNI       string `json:"dni"        validate:"required"`
	Phone     string `json:"phone"      validate:"required"`
	Password  string `json:"password"   validate:"required,min=8"`
	Role      string `json:"role"       validate:"required,oneof=student admin"`
	BirthDate string `json:"birth_date" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type okResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type signUpResponse struct {
	OK      bool         `json:"ok"`
	Message string       `json:"message"`
	NewUser *domain.User `json:"newUser"`
}

type userSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type loginResponse struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message"`
	User    userSummary `json:"user"`
}

// SignUp registers a new account and starts a session.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "User registration details"
// @Success      201   {object}  signUpResponse
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/users/sign-up [post]
func (h *UserHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "birth_date must be an ISO 8601 date")
	}

	user, err := h.users.SignUp(c.Request().Context(), ports.SignUpInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		DNI:       req.DNI,
		Phone:     req.Phone,
		Password:  req.Password,
		Role:      req.Role,
		BirthDate: birthDate,
	})
	if err != nil {
		return err
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusCreated, signUpResponse{OK: true, Message: "User created", NewUser: user})
}

// Login authenticates credentials and starts a session.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("unknown_user").Inc()
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		}
		return err
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		OK:      true,
		Message: "Login successful",
		User: userSummary{
			ID:        user.ID,
			FirstName: user.FirstName,
			Email:     user.Email,
			Role:      user.Role,
		},
	})
}

// Logout clears the session cookie.
//
// @Summary      Logout
// @Tags         users
// @Produce      json
// @Success      200  {object}  okResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/users/logout [get]
func (h *UserHandler) Logout(c echo.Context) error {
	h.cookies.Clear(c)
	return c.JSON(http.StatusOK, okResponse{OK: true, Message: "Logout successful"})
}

// Students lists all student accounts, last name ascending. Admin only.
//
// @Summary      List students
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/users/students [get]
func (h *UserHandler) Students(c echo.Context) error {
	students, err := h.users.Students(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "students": students})
}

// NumberOfStudents returns the student head count. Admin only.
func (h *UserHandler) NumberOfStudents(c echo.Context) error {
	n, err := h.users.NumberOfStudents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "numberOfStudents": n})
}

// TopStudents returns the ten students with most evidences. Admin only.
func (h *UserHandler) TopStudents(c echo.Context) error {
	top, err := h.users.TopStudents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "topStudents": top})
}

// startSession clears any stale cookie and attaches a fresh one, so the
// user agent never holds two ambiguous sessions.
func (h *UserHandler) startSession(c echo.Context, user *domain.User) error {
	token, err := h.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return err
	}
	h.cookies.Clear(c)
	return h.cookies.Attach(c, token)
}

func parseBirthDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
