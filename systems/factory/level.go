package factory

import (
	"fmt"

	"github.com/automoto/doomerang-practice/archetypes"
	"github.com/automoto/doomerang-practice/assets"
	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the practice level from the embedded assets.
func CreateLevel(ecs *ecs.ECS) (*donburi.Entry, error) {
	level, err := assets.LoadLevel(assets.FS(), cfg.Warp.LevelPath)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}
	return CreateLevelFrom(ecs, level), nil
}

// CreateLevelFrom spawns the level entity for an already loaded level.
func CreateLevelFrom(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})
	return entry
}

// CreateGameFlags allocates the host's game flag storage.
func CreateGameFlags(ecs *ecs.ECS, size int) *donburi.Entry {
	entry := archetypes.GameFlags.Spawn(ecs)
	components.GameFlags.SetValue(entry, components.GameFlagsData{Bytes: make([]byte, size)})
	return entry
}
