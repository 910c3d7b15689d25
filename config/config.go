package config

import "image/color"

// HostConfig contains the practice host's simulation values. Units follow
// the actor block: world units per frame, stamina in raw counter units.
type HostConfig struct {
	// Movement
	RunAccel        float32
	DefaultMaxSpeed float32
	Friction        float32
	JumpSpeed       float32
	TurnSpeed       int16 // binary angle units per frame

	// Physics
	Gravity      float32
	MaxFallSpeed float32

	// Stamina
	StaminaMax   uint32
	StaminaDrain uint32 // per frame while running
	StaminaRegen uint32 // per frame otherwise

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Actor type tag written into the vtable slot at spawn
	ActorVtable uint32

	// Game flag storage in bytes
	FlagBytes int
}

// OverlayConfig contains the practice overlay's look and layout.
type OverlayConfig struct {
	// Full-screen dim drawn whenever the overlay is active
	DimX, DimY, DimW, DimH float32
	DimColor               color.RGBA

	// Input guide
	GuideX, GuideY float32
	GuideColor     color.RGBA
	GuideText      string

	// Selection list and submenus
	Heading           string
	ListX, ListY      float32
	LineHeight        float32
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorDisabled color.RGBA
	HeadingColor      color.RGBA
	TextBackground    color.RGBA

	// Cursor blink, seconds per half cycle
	BlinkPeriod float32
	BlinkMin    float32
}

// PauseConfig contains the host pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// HUDConfig contains positions for the always-on readouts toggled from the
// display menu.
type HUDConfig struct {
	X, Y       float32
	LineHeight float32
	TextColor  color.RGBA
	Background color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	OpenMenu   string // Submenu to open at startup
	ConfigPath string // Optional YAML override file
}

// Global configuration instances
var C *Config
var Host HostConfig
var Overlay OverlayConfig
var Pause PauseConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Grey         = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Transparent  = color.RGBA{}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items

	SolidColor     = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	PlayerColor    = color.RGBA{R: 220, G: 120, B: 40, A: 255}
	PlayerRunColor = color.RGBA{R: 255, G: 180, B: 60, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
		TPS:    60,
	}

	Host = HostConfig{
		RunAccel:        0.4,
		DefaultMaxSpeed: 4.0,
		Friction:        0.25,
		JumpSpeed:       7.5,
		TurnSpeed:       0x0800,

		Gravity:      0.4,
		MaxFallSpeed: 10.0,

		StaminaMax:   1000000,
		StaminaDrain: 6000,
		StaminaRegen: 2500,

		CollisionWidth:  14,
		CollisionHeight: 24,

		ActorVtable: 0x804F_A2C0,

		FlagBytes: 16,
	}

	Overlay = OverlayConfig{
		DimX: 0, DimY: 0, DimW: 640, DimH: 480,
		DimColor: color.RGBA{A: 0xC0},

		GuideX:     10,
		GuideY:     420,
		GuideColor: White,
		GuideText:  "[A] Select  [B] Back  [Up/Down] Move  [Left/Right] Change Value",

		Heading:           "Main Menu Select",
		ListX:             40,
		ListY:             40,
		LineHeight:        20,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TextColorDisabled: Grey,
		HeadingColor:      White,
		TextBackground:    Transparent,

		BlinkPeriod: 0.5,
		BlinkMin:    0.45,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightYellow,
		MenuItemHeight:    24,
		MenuItemGap:       10,
		MenuOptions:       []string{"Resume", "Practice Menu", "Exit"},
	}

	HUD = HUDConfig{
		X:          8,
		Y:          8,
		LineHeight: 14,
		TextColor:  White,
		Background: color.RGBA{A: 140},
	}

	Debug = DebugConfig{}
}
