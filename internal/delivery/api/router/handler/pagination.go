package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var errInvalidPagination = errors.New("limit and offset must be non-negative integers")

// parsePagination reads limit/offset query parameters; zero means "use the default".
func parsePagination(c echo.Context) (limit, offset int, err error) {
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return 0, 0, errInvalidPagination
		}
	}

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		offset, err = strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return 0, 0, errInvalidPagination
		}
	}

	return limit, offset, nil
}
