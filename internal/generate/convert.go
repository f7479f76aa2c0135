package generate

import (
	"net/http"
	"strings"

	"github.com/henryhcooperr/Math-LLM-sub001/internal/normalize"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/viz"

	"github.com/gin-gonic/gin"
)

// ConvertRequest is the JSON request for POST /api/convert.
type ConvertRequest struct {
	Params viz.Spec `json:"params"`
	From   string   `json:"from"`
	To     string   `json:"to"`
}

// ConvertResponse carries the reshaped parameters. Converted is false
// when either tag is unknown; the params come back unchanged in that
// case rather than as an error.
type ConvertResponse struct {
	Params    viz.Spec `json:"params"`
	Converted bool     `json:"converted"`
	From      string   `json:"from"`
	To        string   `json:"to"`
}

// ConvertHandler handles POST /api/convert.
func ConvertHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ConvertRequest
		if !decodeRequest(c, &req) {
			return
		}
		from := normalize.LibraryTag(strings.ToLower(strings.TrimSpace(req.From)))
		to := normalize.LibraryTag(strings.ToLower(strings.TrimSpace(req.To)))

		resp := ConvertResponse{
			Params: req.Params,
			From:   string(from),
			To:     string(to),
		}
		if normalize.Known(from) && normalize.Known(to) {
			resp.Params = converter.Convert(req.Params, from, to)
			resp.Converted = true
		}
		c.JSON(http.StatusOK, resp)
	}
}

// DefaultsHandler handles GET /api/defaults/:type. Unknown types get
// the generic defaults with the requested tag preserved.
func DefaultsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, viz.DefaultsFor(c.Param("type")))
	}
}
