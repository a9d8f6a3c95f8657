package router

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"portfolioai/docs"
	"portfolioai/internal/config"
	"portfolioai/internal/errors"
	"portfolioai/internal/handler"
	"portfolioai/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	portfolioHandler *handler.PortfolioHandler,
	resumeHandler *handler.ResumeHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", healthz)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/resume/enhance", resumeHandler.Enhance)
	e.POST("/portfolio/enhance", portfolioHandler.Enhance)
	e.POST("/register", authHandler.Register)
	e.POST("/token", authHandler.Token)

	// Secured routes (require a bearer token)
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		ContextKey: handler.PrincipalContextKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			p, err := authService.ResolveToken(c.Request().Context(), auth)
			if err != nil {
				if !stderrors.Is(err, errors.ErrInvalidCredentials) {
					return nil, &tokenLookupError{err: err}
				}
				return nil, err
			}
			return p, nil
		},
		ErrorHandler: bearerAuthError,
	}))

	secured.GET("/me", authHandler.Me)
	secured.POST("/logout", authHandler.Logout)

	// Portfolio routes
	secured.POST("/portfolio/save", portfolioHandler.Save)
	secured.GET("/portfolios/", portfolioHandler.List)
	secured.GET("/portfolios", portfolioHandler.List)
	secured.GET("/portfolios/:id", portfolioHandler.Get)
}

// healthz godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// tokenLookupError marks a token that could not be checked because a backing store failed.
type tokenLookupError struct {
	err error
}

func (e *tokenLookupError) Error() string { return e.err.Error() }

func (e *tokenLookupError) Unwrap() error { return e.err }

// bearerAuthError answers 401 for missing or bad tokens and maps store failures like any handler error.
func bearerAuthError(c echo.Context, err error) error {
	var lookupErr *tokenLookupError
	if stderrors.As(err, &lookupErr) {
		return handler.RespondError(c, lookupErr.err)
	}
	c.Logger().Debugf("bearer auth rejected: %v", err)
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: errors.ErrInvalidCredentials.Error(),
		Code:  "INVALID_CREDENTIALS",
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
