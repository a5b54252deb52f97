package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ce *ConfigError
		if errors.As(err, &ce) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ce.Message, "title": "configuration error"})
			return
		}

		var dse *DataShapeError
		if errors.As(err, &dse) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": dse.Message, "column": dse.Column, "title": "data shape error"})
			return
		}

		var ume *UndefinedMetricError
		if errors.As(err, &ume) {
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": ume.Error(), "title": "undefined metric"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
