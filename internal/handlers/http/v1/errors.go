package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/storyforge/storyforge-api/internal/errors"
)

// errorResponse is the JSON body for every failed request
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	c.JSON(code.HTTPStatus(), errorResponse{
		Code:    string(code),
		Message: err.Error(),
	})
}

func bindError(c *gin.Context, err error) {
	writeError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
}
