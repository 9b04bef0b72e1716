package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

// LevelResult is the per-level best run stored on disk.
type LevelResult struct {
	BestScore    int `json:"bestScore"`
	FewestDeaths int `json:"fewestDeaths"`
	Completed    bool `json:"completed"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for best-run storage.
// When it fails (or is never called, as in tests), saving and loading
// degrade to no-ops.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "scurry",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func levelResultKey(levelIndex int) string {
	return fmt.Sprintf("level%d", levelIndex)
}

// LoadLevelResult returns the stored best run for a level, or nil when
// nothing has been recorded.
func LoadLevelResult(levelIndex int) *LevelResult {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem(levelResultKey(levelIndex))
	if err != nil {
		log.Printf("Warning: Could not load level result: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var result LevelResult
	if err := json.Unmarshal(data, &result); err != nil {
		log.Printf("Warning: Could not parse saved level result: %v", err)
		return nil
	}
	return &result
}

// SaveLevelResult records a completed run, keeping the better of the stored
// and new values.
func SaveLevelResult(levelIndex, score, deaths int) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	result := LevelResult{BestScore: score, FewestDeaths: deaths, Completed: true}
	if prev := LoadLevelResult(levelIndex); prev != nil && prev.Completed {
		if prev.BestScore > result.BestScore {
			result.BestScore = prev.BestScore
		}
		if prev.FewestDeaths < result.FewestDeaths {
			result.FewestDeaths = prev.FewestDeaths
		}
	}

	data, err := json.Marshal(&result)
	if err != nil {
		log.Printf("Warning: Could not serialize level result: %v", err)
		return
	}
	if err := gdataManager.SaveItem(levelResultKey(levelIndex), data); err != nil {
		log.Printf("Warning: Could not save level result: %v", err)
	}
}
