package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type QueryParams struct {
	PageNumber int
	PageSize   int
}

// FromContext parses page/page_size query parameters with sane bounds.
func FromContext(c echo.Context) QueryParams {
	p := QueryParams{PageNumber: 1, PageSize: DefaultPageSize}

	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		p.PageNumber = v
	}
	if v, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && v > 0 {
		p.PageSize = v
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}
