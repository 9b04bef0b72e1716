package systems

import (
	"github.com/pixelgrove/scurry/components"
	cfg "github.com/pixelgrove/scurry/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateInput returns the singleton frame input, creating it if needed.
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Input))
		components.Input.SetValue(ent, components.InputData{
			DT: 1.0 / float64(cfg.C.TPS),
		})
	}
	ent, _ := components.Input.First(e.World)
	return components.Input.Get(ent)
}

// GetOrCreateSession returns the singleton session state, creating if needed.
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	if _, ok := components.Session.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Session))
		components.Session.SetValue(ent, components.SessionData{})
	}
	ent, _ := components.Session.First(e.World)
	return components.Session.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	return GetOrCreateSession(e).Complete
}

// WithGameplayChecks wraps a system to skip execution once the level is
// complete: the whole simulation freezes in place until an external reset
// rebuilds the level.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}
