package echoutil

import (
	"github.com/labstack/echo/v4"
)

// Detail is the error response body, in the same form as the backend's.
type Detail struct {
	Detail string `json:"detail"`
}

// NewHTTPError makes an error responded as {"detail": detail} with the status code.
func NewHTTPError(code int, detail string, cause error) *echo.HTTPError {
	err := echo.NewHTTPError(code, Detail{Detail: detail})
	if cause != nil {
		err = err.SetInternal(cause)
	}
	return err
}
