package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Wall        = donburi.NewTag().SetName("Wall")
	Collectible = donburi.NewTag().SetName("Collectible")
	Goal        = donburi.NewTag().SetName("Goal")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
	ResolvEnemy  = "enemy"
)
