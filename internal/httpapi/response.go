package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// success sends a 200 JSON body that always includes "error": false.
func success(c echo.Context, data map[string]interface{}) error {
	resp := make(map[string]interface{}, len(data)+1)
	resp["error"] = false
	for k, v := range data {
		resp[k] = v
	}
	return c.JSON(http.StatusOK, resp)
}

// fail sends an error JSON body with the given status code and message.
func fail(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]interface{}{
		"error":   true,
		"message": message,
	})
}
