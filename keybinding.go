package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionDefinition defines an action with its default keybindings and the
// description shown on the help overlay
type ActionDefinition struct {
	Name        string
	Keys        []string
	Description string
}

var actionDefinitions = []ActionDefinition{
	{"quit", []string{"Escape", "KeyQ"}, "Quit viewer"},
	{"next", []string{"Space", "KeyN", "ArrowRight"}, "Next image"},
	{"previous", []string{"Backspace", "KeyP", "ArrowLeft"}, "Previous image"},
	{"first", []string{"Home"}, "Jump to first image"},
	{"last", []string{"End"}, "Jump to last image"},
	{"rotate_right", []string{"KeyR"}, "Rotate 90 degrees clockwise"},
	{"rotate_left", []string{"KeyL"}, "Rotate 90 degrees counterclockwise"},
	{"flip_horizontal", []string{"KeyH"}, "Flip horizontally"},
	{"flip_vertical", []string{"KeyV"}, "Flip vertically"},
	{"reset_transform", []string{"Key0"}, "Reset rotation and flips"},
	{"save", []string{"KeyS"}, "Save a copy of the current view"},
	{"cycle_sort", []string{"Shift+KeyS"}, "Cycle sort method"},
	{"refresh", []string{"KeyU"}, "Rescan the active folder"},
	{"info", []string{"KeyI"}, "Show/hide image details"},
	{"help", []string{"Shift+Slash"}, "Show/hide help"},
	{"fullscreen", []string{"Enter", "KeyF"}, "Toggle fullscreen"},
}

// GetActionDescriptions returns a map of action names to their descriptions
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = action.Keys
	}
	return keybindings
}

// keyMapping maps config key names to ebiten keys
var keyMapping = map[string]ebiten.Key{
	"KeyA": ebiten.KeyA, "KeyB": ebiten.KeyB, "KeyC": ebiten.KeyC, "KeyD": ebiten.KeyD,
	"KeyE": ebiten.KeyE, "KeyF": ebiten.KeyF, "KeyG": ebiten.KeyG, "KeyH": ebiten.KeyH,
	"KeyI": ebiten.KeyI, "KeyJ": ebiten.KeyJ, "KeyK": ebiten.KeyK, "KeyL": ebiten.KeyL,
	"KeyM": ebiten.KeyM, "KeyN": ebiten.KeyN, "KeyO": ebiten.KeyO, "KeyP": ebiten.KeyP,
	"KeyQ": ebiten.KeyQ, "KeyR": ebiten.KeyR, "KeyS": ebiten.KeyS, "KeyT": ebiten.KeyT,
	"KeyU": ebiten.KeyU, "KeyV": ebiten.KeyV, "KeyW": ebiten.KeyW, "KeyX": ebiten.KeyX,
	"KeyY": ebiten.KeyY, "KeyZ": ebiten.KeyZ,

	"Key0": ebiten.Key0, "Key1": ebiten.Key1, "Key2": ebiten.Key2, "Key3": ebiten.Key3,
	"Key4": ebiten.Key4, "Key5": ebiten.Key5, "Key6": ebiten.Key6, "Key7": ebiten.Key7,
	"Key8": ebiten.Key8, "Key9": ebiten.Key9,

	"Space":      ebiten.KeySpace,
	"Backspace":  ebiten.KeyBackspace,
	"Enter":      ebiten.KeyEnter,
	"Escape":     ebiten.KeyEscape,
	"Tab":        ebiten.KeyTab,
	"Home":       ebiten.KeyHome,
	"End":        ebiten.KeyEnd,
	"PageUp":     ebiten.KeyPageUp,
	"PageDown":   ebiten.KeyPageDown,
	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,
	"Comma":      ebiten.KeyComma,
	"Period":     ebiten.KeyPeriod,
	"Slash":      ebiten.KeySlash,
	"Minus":      ebiten.KeyMinus,
	"Equal":      ebiten.KeyEqual,
}

// KeyCombination represents a key with optional modifiers
type KeyCombination struct {
	Key   ebiten.Key
	Shift bool
	Ctrl  bool
	Alt   bool
}

// parseKeyString parses a key string like "Shift+KeyR" into a KeyCombination
func parseKeyString(keyStr string) (KeyCombination, error) {
	parts := strings.Split(keyStr, "+")

	var combination KeyCombination
	keyName := parts[len(parts)-1]
	key, exists := keyMapping[keyName]
	if !exists {
		return combination, fmt.Errorf("unknown key: %s", keyName)
	}
	combination.Key = key

	for _, part := range parts[:len(parts)-1] {
		switch strings.ToLower(part) {
		case "shift":
			combination.Shift = true
		case "ctrl":
			combination.Ctrl = true
		case "alt":
			combination.Alt = true
		default:
			return combination, fmt.Errorf("unknown modifier: %s", part)
		}
	}

	return combination, nil
}

// validateKeybindings checks key formats and rejects conflicting bindings
func validateKeybindings(keybindings map[string][]string) error {
	keyToAction := make(map[string]string)

	for action, keys := range keybindings {
		for _, keyStr := range keys {
			if _, err := parseKeyString(keyStr); err != nil {
				return fmt.Errorf("invalid key '%s' for action '%s': %v", keyStr, action, err)
			}

			if existingAction, exists := keyToAction[keyStr]; exists {
				return fmt.Errorf("key conflict: '%s' is bound to both '%s' and '%s'",
					keyStr, existingAction, action)
			}
			keyToAction[keyStr] = action
		}
	}

	return nil
}

// KeybindingManager resolves configured keybindings against the current
// frame's input state
type KeybindingManager struct {
	keybindings map[string][]string
}

// NewKeybindingManager creates a new KeybindingManager
func NewKeybindingManager(keybindings map[string][]string) *KeybindingManager {
	return &KeybindingManager{keybindings: keybindings}
}

// isPressed checks if a key combination was just pressed this frame
func (km *KeybindingManager) isPressed(c KeyCombination) bool {
	if !inpututil.IsKeyJustPressed(c.Key) {
		return false
	}

	// Modifiers must match exactly so Shift+KeyS does not also fire KeyS
	if c.Shift != ebiten.IsKeyPressed(ebiten.KeyShift) {
		return false
	}
	if c.Ctrl != ebiten.IsKeyPressed(ebiten.KeyControl) {
		return false
	}
	if c.Alt != ebiten.IsKeyPressed(ebiten.KeyAlt) {
		return false
	}

	return true
}

// CheckAction reports whether any keybinding for the action is pressed
func (km *KeybindingManager) CheckAction(action string) bool {
	for _, keyStr := range km.keybindings[action] {
		combination, err := parseKeyString(keyStr)
		if err == nil && km.isPressed(combination) {
			return true
		}
	}
	return false
}

// GetKeybindings returns the current keybindings map (for the help overlay)
func (km *KeybindingManager) GetKeybindings() map[string][]string {
	return km.keybindings
}
