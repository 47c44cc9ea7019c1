package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// userID returns a string form of the authenticated user's ID for use
// in cache and rate-limit keys.  JWT numeric claims arrive as float64;
// unauthenticated requests key as "guest".
func userID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	}
	return "guest"
}
