package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Eursukkul/event-catalog/internal/dto"
	"github.com/Eursukkul/event-catalog/internal/service"
	"github.com/labstack/echo/v4"
)

// parseID reads the :id path param. Ids must fit a signed bigint column.
func parseID(c echo.Context, label string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, dto.ErrorResponse{
			Code:    dto.CodeInvalidID,
			Message: "invalid " + label + " id",
		})
	}
	return uint(id), nil
}

// toHTTPError maps service errors to an echo.HTTPError carrying the response payload.
func toHTTPError(err error) *echo.HTTPError {
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		return echo.NewHTTPError(http.StatusNotFound, dto.NotFound(nf.Resource, nf.ID, nf.Error()))
	}
	return echo.NewHTTPError(http.StatusInternalServerError, dto.ErrorResponse{
		Code:    dto.CodeInternalError,
		Message: http.StatusText(http.StatusInternalServerError),
	}).SetInternal(err)
}
