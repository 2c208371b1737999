package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

func CustomHTTPErrorHandler(err error, c echo.Context) {
	v := ValidationError{}
	if errors.As(err, &v) {
		if !c.Response().Committed {
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
				"errors": v.Fields,
			})
		}
		return
	}

	e := HttpError{}
	if errors.As(err, &e) {
		c.Echo().DefaultHTTPErrorHandler(echo.NewHTTPError(e.Code, e.Error()), c)
		return
	}
	c.Echo().DefaultHTTPErrorHandler(err, c)
}
