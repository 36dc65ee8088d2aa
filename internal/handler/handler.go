package handler

import (
	"bytes"

	"github.com/academia/malla-api/internal/apperror"
	"github.com/academia/malla-api/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindBody decodes the request body into a field map. An empty body or a
// JSON null is an empty object; anything that is not a JSON object fails
// and the 400 has already been written.
func bindBody(c *gin.Context) (map[string]any, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		response.Fail(c, apperror.Validation(response.MsgInvalidBody))
		return nil, false
	}

	input := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return input, true
	}
	if err := binding.JSON.BindBody(raw, &input); err != nil {
		response.Fail(c, apperror.Validation(response.MsgInvalidBody))
		return nil, false
	}
	if input == nil {
		input = map[string]any{}
	}
	return input, true
}
