package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the host pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuPractice
	MenuExit
	NumPauseOptions
)

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
}

var Pause = donburi.NewComponentType[PauseData]()
