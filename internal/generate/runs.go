package generate

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// RunsIndexHandler handles GET /api/runs. A missing index reads as an
// empty list, not an error.
func RunsIndexHandler(runsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := readRunsIndex(runsDir)
		if err != nil {
			log.Printf("read runs index: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read runs index"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"runs": entries})
	}
}

// RunHandler handles GET /api/runs/:id, serving the stored response for
// a run. IDs that do not match the generated pattern are rejected.
func RunHandler(runsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !validRunID(id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		b, err := readRunResponse(runsDir, id)
		if err != nil {
			if os.IsNotExist(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
				return
			}
			log.Printf("read run %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read run"})
			return
		}
		c.Data(http.StatusOK, "application/json", b)
	}
}
