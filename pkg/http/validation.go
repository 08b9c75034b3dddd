package http

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/battlogger/pkg/common"
)

// readBody decodes the request body as a JSON object. A body that is absent
// or not an object yields no fields, so every required field reports missing.
func readBody(c *gin.Context) common.Fields {
	body := common.Fields{}
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		return body
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return common.Fields{}
	}
	return body
}
