package config

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestOverlayChordBindings(t *testing.T) {
	tests := []struct {
		action ActionID
		key    ebiten.Key
		button ebiten.StandardGamepadButton
	}{
		{ActionOverlayZ, ebiten.KeyZ, ebiten.StandardGamepadButtonFrontBottomLeft},
		{ActionOverlayC, ebiten.KeyC, ebiten.StandardGamepadButtonFrontBottomRight},
	}

	if len(Input.OverlayChord) != len(tests) {
		t.Fatalf("chord = %v", Input.OverlayChord)
	}
	for i, tt := range tests {
		if Input.OverlayChord[i] != tt.action {
			t.Errorf("chord[%d] = %d, want %d", i, Input.OverlayChord[i], tt.action)
		}
		b := Input.Bindings[tt.action]
		if len(b.Keys) != 1 || b.Keys[0] != tt.key {
			t.Errorf("action %d keys = %v", tt.action, b.Keys)
		}
		if len(b.StandardGamepadButtons) != 1 || b.StandardGamepadButtons[0] != tt.button {
			t.Errorf("action %d buttons = %v, want trigger %v", tt.action, b.StandardGamepadButtons, tt.button)
		}
	}
}
