package handler

import (
	"net/http"

	"github.com/Eursukkul/event-catalog/internal/dto"
	"github.com/Eursukkul/event-catalog/internal/service"
	"github.com/labstack/echo/v4"
)

const eventLabel = "event"

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListEvents)
	g.GET("/:id", h.GetEvent)
	g.GET("/:id/entry-types", h.ListEntryTypes)
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.ListEvents(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToEventSummaryList(events))
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := parseID(c, eventLabel)
	if err != nil {
		return err
	}

	event, err := h.svc.GetEventByID(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToEventDetail(event))
}

func (h *EventHandler) ListEntryTypes(c echo.Context) error {
	id, err := parseID(c, eventLabel)
	if err != nil {
		return err
	}

	entryTypes, err := h.svc.GetEntryTypes(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToEntryTypeSummaryList(entryTypes))
}
