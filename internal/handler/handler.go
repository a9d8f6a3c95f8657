package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolioai/internal/errors"
	"portfolioai/internal/model"
	"portfolioai/internal/service"
)

// PrincipalContextKey is where the auth middleware stores the *service.Principal.
const PrincipalContextKey = "principal"

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	Extract(filename string, data []byte) (string, error)
}

// Enhancer rewrites resume and portfolio text with a generative model.
type Enhancer interface {
	EnhanceResume(ctx context.Context, resumeText string) (string, error)
	EnhancePortfolio(ctx context.Context, portfolio model.Portfolio) (*model.Portfolio, error)
}

// RespondError maps err to its status and error body once, logging anything that ends up as a 5xx.
func RespondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		c.Logger().Errorf("request_id=%s %s %s: %v",
			c.Response().Header().Get(echo.HeaderXRequestID),
			c.Request().Method, c.Path(), err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// badRequest reports a malformed request body.
func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  "INVALID_REQUEST",
	})
}

// validationFailed reports a request that parsed but did not pass validation.
func validationFailed(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

// principal returns the caller resolved by the auth middleware.
func principal(c echo.Context) (*service.Principal, error) {
	p, ok := c.Get(PrincipalContextKey).(*service.Principal)
	if !ok || p == nil || p.User == nil {
		return nil, errors.ErrInvalidCredentials
	}
	return p, nil
}
