package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	PatrolSpeed float64 // px/s, magnitude only; direction lives in Physics.Velocity.X
}

var Enemy = donburi.NewComponentType[EnemyData]()
