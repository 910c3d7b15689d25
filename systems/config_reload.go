package systems

import (
	"fmt"
	"log"

	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/yohamta/donburi/ecs"
)

var configWatcher *cfg.Watcher

// WatchConfig starts watching the override file for edits. Changes are
// applied by UpdateConfigReload on the frame thread.
func WatchConfig(path string) error {
	w, err := cfg.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	configWatcher = w
	return nil
}

// StopConfigWatch stops the watcher started by WatchConfig.
func StopConfigWatch() {
	if configWatcher == nil {
		return
	}
	_ = configWatcher.Close()
	configWatcher = nil
}

// UpdateConfigReload applies a pending override file change. A bad file is
// reported and leaves the running configuration unchanged.
func UpdateConfigReload(e *ecs.ECS) {
	if configWatcher == nil {
		return
	}

	select {
	case path := <-configWatcher.Events:
		if err := cfg.ApplyFile(path); err != nil {
			log.Printf("Warning: Could not reload config: %v", err)
			return
		}
		// Cursor blink tweens were built from the old period
		if entry, ok := components.CursorBlink.First(e.World); ok {
			components.CursorBlink.Get(entry).Tween = nil
		}
		log.Printf("Reloaded config from %s", path)
	case err := <-configWatcher.Errors:
		log.Printf("Warning: Config watcher: %v", err)
	default:
	}
}
