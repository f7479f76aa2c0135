package generate

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/henryhcooperr/Math-LLM-sub001/internal/viz"
)

func genRunID() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(1e9))
	return fmt.Sprintf("run_%d_%d", time.Now().UnixMilli(), n.Int64())
}

func createRunDir(runsDir string) (string, string, error) {
	id := genRunID()
	path := filepath.Join(runsDir, id)
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", "", err
	}
	return id, path, nil
}

var runIDPattern = regexp.MustCompile(`^run_\d+_\d+$`)

// validRunID accepts only generated run IDs, which keeps user-supplied
// IDs from escaping the runs directory.
func validRunID(id string) bool {
	return runIDPattern.MatchString(id)
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// saveRunArtifacts writes the request, the raw model text, and the
// extracted response into the run directory. Stub runs have no raw
// text; the file is written anyway so every run has the same layout.
func saveRunArtifacts(runPath string, req VisualizeRequest, rawText string, resp viz.Response) error {
	if err := saveJSON(filepath.Join(runPath, "request.json"), req); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(runPath, "raw.txt"), []byte(rawText), 0644); err != nil {
		return err
	}
	return saveJSON(filepath.Join(runPath, "response.json"), resp)
}

func readRunResponse(runsDir, id string) ([]byte, error) {
	return os.ReadFile(filepath.Join(runsDir, id, "response.json"))
}

type RunIndexEntry struct {
	RunID     string `json:"run_id"`
	Status    string `json:"status"`
	Timestamp int64  `json:"ts"`
	Prompt    string `json:"prompt,omitempty"`
}

func updateRunsIndex(runsDir string, limit int, entry RunIndexEntry) error {
	if limit <= 0 {
		return nil
	}
	indexPath := filepath.Join(runsDir, "index.json")
	var entries []RunIndexEntry
	if b, err := os.ReadFile(indexPath); err == nil {
		_ = json.Unmarshal(b, &entries)
	}
	entries = append([]RunIndexEntry{entry}, entries...)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return saveJSON(indexPath, entries)
}

func readRunsIndex(runsDir string) ([]RunIndexEntry, error) {
	b, err := os.ReadFile(filepath.Join(runsDir, "index.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return []RunIndexEntry{}, nil
		}
		return nil, err
	}
	var entries []RunIndexEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// indexPrompt trims the prompt to a short index-friendly summary,
// backing off to a rune boundary.
func indexPrompt(prompt string) string {
	const max = 80
	if len(prompt) <= max {
		return prompt
	}
	cut := prompt[:max]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
