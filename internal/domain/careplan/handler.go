package careplan

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/careops/careops/internal/domain/client"
	"github.com/careops/careops/internal/platform/auth"
	"github.com/careops/careops/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	role := auth.RequireRole("care_manager", "nurse", "clinical_director")

	g := api.Group("", role)
	g.POST("/care-plans/generate", h.Generate)
	g.GET("/care-plans/:id", h.GetCarePlan)
	g.GET("/clients/:id/care-plans", h.ListByClient)
}

func (h *Handler) Generate(c echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ClientID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "client_id is required")
	}

	result, err := h.svc.Generate(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "client not found")
		case errors.Is(err, ErrNoCompletedAssessments):
			return echo.NewHTTPError(http.StatusBadRequest, ErrNoCompletedAssessments.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "care plan generation failed")
		}
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) GetCarePlan(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	cp, err := h.svc.GetCarePlan(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "care plan not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, cp)
}

func (h *Handler) ListByClient(c echo.Context) error {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid client id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListCarePlansByClient(c.Request().Context(), clientID, pg.Limit, pg.Offset)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "client not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
