package generate

import (
	"math"
	"net/http"
	"strings"

	"github.com/henryhcooperr/Math-LLM-sub001/internal/config"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/expr"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/viz"

	"github.com/gin-gonic/gin"
)

const defaultSampleSteps = 100

// SampleRequest is the JSON request for POST /api/sample.
type SampleRequest struct {
	Expression string    `json:"expression"`
	Variable   string    `json:"variable,omitempty"`
	Domain     []float64 `json:"domain,omitempty"`
	Steps      int       `json:"steps,omitempty"`
}

// SampleResponse lists the finite samples of the expression over the
// domain. Points where the expression is NaN or infinite are omitted.
type SampleResponse struct {
	Expression string            `json:"expression"`
	Variable   string            `json:"variable"`
	Domain     []float64         `json:"domain"`
	Steps      int               `json:"steps"`
	Samples    []viz.SamplePoint `json:"samples"`
}

// SampleHandler handles POST /api/sample. Parse errors surface as 400
// with the evaluator's message; evaluation itself cannot fail.
func SampleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SampleRequest
		if !decodeRequest(c, &req) {
			return
		}
		req.Expression = strings.TrimSpace(req.Expression)
		if req.Expression == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expression must be non-empty"})
			return
		}
		variable := req.Variable
		if variable == "" {
			variable = "x"
		}
		if !expr.KnownVariable(variable) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown variable: " + variable})
			return
		}

		domain := viz.FixInterval(req.Domain, []float64{-10, 10})
		steps := req.Steps
		if steps < 1 {
			steps = defaultSampleSteps
		}
		if max := config.SampleStepsMax(); steps > max {
			steps = max
		}

		node, err := evaluator.ParseCached(req.Expression)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		samples := make([]viz.SamplePoint, 0, steps+1)
		width := domain[1] - domain[0]
		vars := map[string]float64{}
		for i := 0; i <= steps; i++ {
			x := domain[0] + width*float64(i)/float64(steps)
			vars[variable] = x
			y := expr.Evaluate(node, vars)
			if !finite(y) {
				continue
			}
			samples = append(samples, viz.SamplePoint{X: x, Y: y})
		}

		c.JSON(http.StatusOK, SampleResponse{
			Expression: req.Expression,
			Variable:   variable,
			Domain:     domain,
			Steps:      steps,
			Samples:    samples,
		})
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
