package components

import (
	"github.com/yohamta/donburi"
)

// SessionData tracks the run state of the current level attempt.
type SessionData struct {
	Score    int
	Deaths   int
	Complete bool // set the first frame the player box overlaps the goal
}

var Session = donburi.NewComponentType[SessionData]()
