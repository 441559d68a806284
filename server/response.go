package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/voicetext/errors"
)

// DataResponse is the success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// RespondWithError writes the error envelope with the status carried by the
// *errors.AppError; any other error is a 500 INTERNAL_ERROR.
func RespondWithError(c *gin.Context, err error) {
	appErr := errors.Wrap(err)
	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, appErr.ToResponse())
}

// RespondOK sends a 200 response wrapping data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}
