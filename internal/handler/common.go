package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// dateLayout is the wire format for all date fields (trip ranges, stop
// ranges, scheduled activity dates).
const dateLayout = "2006-01-02"

// getUserID extracts the authenticated user's id from the echo context.
// The JWT middleware stores the raw `sub` claim, which the jwt library
// decodes as float64 for numeric subjects; some clients encode it as a
// string. Returns echo.ErrUnauthorized when no usable id is present.
func getUserID(c echo.Context) (uint64, error) {
	switch v := c.Get("user_id").(type) {
	case float64:
		if v > 0 {
			return uint64(v), nil
		}
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil && n > 0 {
			return n, nil
		}
	case uint64:
		if v > 0 {
			return v, nil
		}
	}
	return 0, echo.ErrUnauthorized
}

// parseID parses a numeric path parameter.
func parseID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil
}

// parseDate parses a YYYY-MM-DD value.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// fmtDate renders a date in the wire format.
func fmtDate(t time.Time) string {
	return t.Format(dateLayout)
}
