package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/doomerang-practice/actor"
	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/quasilyte/gdata"
)

// SavedDisplay represents the display menu toggles stored on disk
type SavedDisplay struct {
	Enabled []bool `json:"enabled"`
}

const displayItemKey = "display"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings and practice
// save storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang-practice",
	})
	if err != nil {
		return fmt.Errorf("open persistence: %w", err)
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func persistenceReady() bool {
	return gdataInitialized && gdataManager != nil
}

// LoadDisplaySettings loads the display toggles from disk. It returns nil
// when nothing was saved yet.
func LoadDisplaySettings() (*SavedDisplay, error) {
	if !persistenceReady() {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(displayItemKey)
	if err != nil {
		log.Printf("Warning: Could not load display settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedDisplay
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse display settings: %w", err)
	}
	return &saved, nil
}

// SaveDisplaySettings saves the display toggles to disk
func SaveDisplaySettings(d *components.DisplayMenuData) error {
	if !persistenceReady() {
		return nil
	}

	saved := SavedDisplay{Enabled: d.Enabled[:]}
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("serialize display settings: %w", err)
	}
	if err := gdataManager.SaveItem(displayItemKey, data); err != nil {
		return fmt.Errorf("save display settings: %w", err)
	}
	return nil
}

// ApplySavedDisplay copies loaded toggles into the display menu state.
// Unknown trailing toggles from a newer save are ignored.
func ApplySavedDisplay(d *components.DisplayMenuData, saved *SavedDisplay) {
	if saved == nil {
		return
	}
	for i := 0; i < len(saved.Enabled) && i < len(d.Enabled); i++ {
		d.Enabled[i] = saved.Enabled[i]
	}
}

func practiceSlotKey(slot int) string {
	return fmt.Sprintf("%s%d", cfg.PracticeSaves.KeyPrefix, slot)
}

// LoadPracticeSlot reads one practice save. It returns nil for an empty slot.
func LoadPracticeSlot(slot int) (*actor.Snapshot, error) {
	if !persistenceReady() {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(practiceSlotKey(slot))
	if err != nil {
		return nil, fmt.Errorf("load practice slot %d: %w", slot, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var snap actor.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse practice slot %d: %w", slot, err)
	}
	return &snap, nil
}

// SavePracticeSlot writes one practice save. A nil snapshot clears the slot.
func SavePracticeSlot(slot int, snap *actor.Snapshot) error {
	if !persistenceReady() {
		return nil
	}

	var data []byte
	if snap != nil {
		var err error
		if data, err = json.Marshal(snap); err != nil {
			return fmt.Errorf("serialize practice slot %d: %w", slot, err)
		}
	}

	if err := gdataManager.SaveItem(practiceSlotKey(slot), data); err != nil {
		return fmt.Errorf("save practice slot %d: %w", slot, err)
	}
	return nil
}
