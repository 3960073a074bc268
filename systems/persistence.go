package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedScores represents the score data stored on disk
type SavedScores struct {
	HighScore int `json:"highScore"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "ghostpunch",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadHighScore loads the saved high score. Returns 0 when nothing
// has been saved yet or persistence is unavailable.
func LoadHighScore() int {
	if !gdataInitialized || gdataManager == nil {
		return 0
	}

	data, err := gdataManager.LoadItem("scores")
	if err != nil {
		log.Printf("Warning: Could not load scores: %v", err)
		return 0
	}
	if data == nil {
		return 0
	}

	var scores SavedScores
	if err := json.Unmarshal(data, &scores); err != nil {
		log.Printf("Warning: Could not parse saved scores: %v", err)
		return 0
	}
	return scores.HighScore
}

// SaveHighScore persists a new high score.
func SaveHighScore(score int) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(SavedScores{HighScore: score})
	if err != nil {
		return
	}
	if err := gdataManager.SaveItem("scores", data); err != nil {
		log.Printf("Warning: Could not save scores: %v", err)
	}
}
