package handler

import (
	"net/http"

	"github.com/Eursukkul/event-catalog/internal/dto"
	"github.com/Eursukkul/event-catalog/internal/service"
	"github.com/labstack/echo/v4"
)

const entryTypeLabel = "entry type"

type EntryTypeHandler struct {
	svc service.EntryTypeService
}

func NewEntryTypeHandler(svc service.EntryTypeService) *EntryTypeHandler {
	return &EntryTypeHandler{svc: svc}
}

func (h *EntryTypeHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListEntryTypes)
	g.GET("/:id", h.GetEntryType)
}

func (h *EntryTypeHandler) ListEntryTypes(c echo.Context) error {
	entryTypes, err := h.svc.ListEntryTypes(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToEntryTypeSummaryList(entryTypes))
}

func (h *EntryTypeHandler) GetEntryType(c echo.Context) error {
	id, err := parseID(c, entryTypeLabel)
	if err != nil {
		return err
	}

	et, err := h.svc.GetEntryTypeByID(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToEntryTypeSummary(et))
}
