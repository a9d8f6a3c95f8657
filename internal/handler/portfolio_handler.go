package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"portfolioai/internal/errors"
	"portfolioai/internal/service"
)

// PortfolioHandler handles portfolio enhancement and storage endpoints.
type PortfolioHandler struct {
	enhancer         Enhancer
	portfolioService service.PortfolioService
}

// NewPortfolioHandler creates a new portfolio handler.
func NewPortfolioHandler(enhancer Enhancer, portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		enhancer:         enhancer,
		portfolioService: portfolioService,
	}
}

// Enhance godoc
// @Summary Rewrite every project description of a portfolio
// @Tags portfolio
// @Accept json
// @Produce json
// @Param request body model.Portfolio true "Portfolio"
// @Success 200 {object} model.Portfolio
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /portfolio/enhance [post]
func (h *PortfolioHandler) Enhance(c echo.Context) error {
	portfolio, err := bindPortfolio(c)
	if err != nil {
		return err
	}

	enhanced, err := h.enhancer.EnhancePortfolio(c.Request().Context(), portfolio)
	if err != nil {
		return RespondError(c, err)
	}

	return c.JSON(http.StatusOK, enhanced)
}

// Save godoc
// @Summary Save a portfolio for the current user
// @Tags portfolio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.Portfolio true "Portfolio"
// @Success 200 {object} model.Portfolio
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /portfolio/save [post]
func (h *PortfolioHandler) Save(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return RespondError(c, err)
	}

	portfolio, err := bindPortfolio(c)
	if err != nil {
		return err
	}

	saved, err := h.portfolioService.Save(c.Request().Context(), p.User.ID, portfolio)
	if err != nil {
		return RespondError(c, err)
	}

	return c.JSON(http.StatusOK, saved)
}

// List godoc
// @Summary List the current user's portfolios
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PortfolioSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /portfolios/ [get]
func (h *PortfolioHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return RespondError(c, err)
	}

	summaries, err := h.portfolioService.List(c.Request().Context(), p.User.ID)
	if err != nil {
		return RespondError(c, err)
	}

	return c.JSON(http.StatusOK, summaries)
}

// Get godoc
// @Summary Get one of the current user's portfolios
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Param id path int true "Portfolio ID"
// @Success 200 {object} model.Portfolio
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /portfolios/{id} [get]
func (h *PortfolioHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return RespondError(c, err)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return RespondError(c, errors.Validation("invalid portfolio id %q", c.Param("id")))
	}

	portfolio, err := h.portfolioService.Get(c.Request().Context(), p.User.ID, uint(id))
	if err != nil {
		return RespondError(c, err)
	}

	return c.JSON(http.StatusOK, portfolio)
}
