package components

import "github.com/yohamta/donburi"

// SessionData is round-level bookkeeping, held by a singleton entity
// alongside the damage and defeat queues.
type SessionData struct {
	Score      int
	HighScore  int
	Enemies    int // currently alive
	RoundTimer Timer
	SinceSpawn float64
	GameOver   bool
	TimeUp     bool
}

var Session = donburi.NewComponentType[SessionData]()

// TimeData carries the tick's delta time for every system that
// integrates over it.
type TimeData struct {
	DeltaTime float64
}

var Time = donburi.NewComponentType[TimeData]()
