package generate

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/henryhcooperr/Math-LLM-sub001/internal/config"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/expr"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/httputil"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/normalize"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/viz"

	"github.com/gin-gonic/gin"
)

// shared expression cache behind the conversion and sampling handlers
var (
	evaluator = expr.New(0)
	converter = normalize.NewConverter(evaluator)
)

// VisualizeRequest is the JSON request for POST /api/visualize.
type VisualizeRequest struct {
	Prompt  string `json:"prompt"`
	Library string `json:"library,omitempty"`
}

// VisualizeResponse wraps the canonical response with run metadata and,
// when a library was requested, the converted parameters.
type VisualizeResponse struct {
	RunID           string       `json:"run_id"`
	Status          string       `json:"status"`
	Model           string       `json:"model,omitempty"`
	Response        viz.Response `json:"response"`
	Library         string       `json:"library,omitempty"`
	ConvertedParams *viz.Spec    `json:"converted_params,omitempty"`
}

// VisualizeHandler handles POST /api/visualize.
func VisualizeHandler(runsDir string, maxRuns int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VisualizeRequest
		if !decodeRequest(c, &req) {
			return
		}
		req.Prompt = strings.TrimSpace(req.Prompt)
		if req.Prompt == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "prompt must be non-empty"})
			return
		}
		if len(req.Prompt) > config.MaxPromptChars {
			c.JSON(http.StatusBadRequest, gin.H{"error": "prompt too long"})
			return
		}
		req.Library = strings.ToLower(strings.TrimSpace(req.Library))

		res := generateVisualization(c.Request.Context(), runsDir, req.Prompt)

		var converted *viz.Spec
		if req.Library != "" && normalize.Known(normalize.LibraryTag(req.Library)) {
			out := converter.Convert(res.Response.Params, normalize.LibCanonical, normalize.LibraryTag(req.Library))
			converted = &out
		}

		runID, runPath, err := createRunDir(runsDir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create run directory"})
			return
		}
		if err := saveRunArtifacts(runPath, req, res.RawText, res.Response); err != nil {
			log.Printf("save run artifacts: %v", err)
			_ = os.RemoveAll(runPath)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist run"})
			return
		}

		if err := updateRunsIndex(runsDir, config.RunsIndexLimit(), RunIndexEntry{
			RunID:     runID,
			Status:    res.status(),
			Timestamp: time.Now().Unix(),
			Prompt:    indexPrompt(req.Prompt),
		}); err != nil {
			log.Printf("runs index update: %v", err)
		}

		if err := PruneRuns(runsDir, maxRuns); err != nil {
			log.Printf("prune runs: %v", err)
		}

		c.JSON(http.StatusOK, VisualizeResponse{
			RunID:           runID,
			Status:          res.status(),
			Model:           res.Model,
			Response:        res.Response,
			Library:         req.Library,
			ConvertedParams: converted,
		})
	}
}

// decodeRequest decodes a size-capped, strict JSON body into v. On
// failure it writes the error response and reports false.
func decodeRequest(c *gin.Context, v any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxRequestBytes)
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if httputil.IsBodyTooLarge(err) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

type runEntry struct {
	path    string
	modTime time.Time
}

// PruneRuns removes the oldest run directories beyond maxRuns. The
// retention sweeper calls it on a schedule; the visualize handler after
// each run.
func PruneRuns(runsDir string, maxRuns int) error {
	if maxRuns <= 0 {
		return nil
	}
	entries, err := os.ReadDir(runsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var runs []runEntry
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if !strings.HasPrefix(entry.Name(), "run_") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		runs = append(runs, runEntry{
			path:    filepath.Join(runsDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	if len(runs) <= maxRuns {
		return nil
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].modTime.After(runs[j].modTime)
	})

	for i := maxRuns; i < len(runs); i++ {
		if err := os.RemoveAll(runs[i].path); err != nil {
			return err
		}
	}
	return nil
}
