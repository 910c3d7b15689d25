package config

// WarpConfig contains warp menu configuration
type WarpConfig struct {
	LevelPath   string  // TMX file inside the embedded levels FS
	HereRadius  float32 // XZ distance at which a destination counts as "here"
	VisibleRows int
}

// CheatsConfig contains values the cheats menu writes into the actor
type CheatsConfig struct {
	MoonJumpSpeed   float32 // upward velocity while Jump is held
	FastRunMaxSpeed float32 // forward max speed while fast run is on
}

// PracticeSavesConfig contains practice save slot configuration
type PracticeSavesConfig struct {
	Slots     int
	KeyPrefix string // gdata item key prefix, slot index is appended
}

// SubmenuEntry is a top-level selection entry. The order of Submenus is the
// selection index and must match components.MenuState.
type SubmenuEntry struct {
	Label string
	Name  string // short name accepted by -open
}

// Global submenu configuration instances
var Warp WarpConfig
var Cheats CheatsConfig
var PracticeSaves PracticeSavesConfig
var Submenus []SubmenuEntry

func init() {
	Warp = WarpConfig{
		LevelPath:   "levels/practice.tmx",
		HereRadius:  24,
		VisibleRows: 12,
	}

	Cheats = CheatsConfig{
		MoonJumpSpeed:   -5,
		FastRunMaxSpeed: 9,
	}

	PracticeSaves = PracticeSavesConfig{
		Slots:     8,
		KeyPrefix: "practice-slot-",
	}

	Submenus = []SubmenuEntry{
		{Label: "Display Menu", Name: "display"},
		{Label: "Warp Menu", Name: "warp"},
		{Label: "Action Menu", Name: "action"},
		{Label: "Cheats Menu", Name: "cheats"},
		{Label: "Practice Saves Menu", Name: "saves"},
		{Label: "Flag Menu", Name: "flags"},
	}
}
