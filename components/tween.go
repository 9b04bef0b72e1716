package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives render-only scale animation (collectible pulse).
var Tween = donburi.NewComponentType[gween.Sequence]()
