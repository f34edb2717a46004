package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a logical game input, decoupled from the physical key.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionAttack
	ActionMagic
	ActionSwitchWeapon
	ActionSwitchMagic
	ActionMenu
	ActionConfirm
)

var actionNames = map[Action]string{
	ActionUp:           "up",
	ActionDown:         "down",
	ActionLeft:         "left",
	ActionRight:        "right",
	ActionAttack:       "attack",
	ActionMagic:        "magic",
	ActionSwitchWeapon: "switch_weapon",
	ActionSwitchMagic:  "switch_magic",
	ActionMenu:         "menu",
	ActionConfirm:      "confirm",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// DefaultBindings maps every action to its keys.
func DefaultBindings() map[Action][]ebiten.Key {
	return map[Action][]ebiten.Key{
		ActionUp:           {ebiten.KeyArrowUp, ebiten.KeyW},
		ActionDown:         {ebiten.KeyArrowDown, ebiten.KeyS},
		ActionLeft:         {ebiten.KeyArrowLeft, ebiten.KeyA},
		ActionRight:        {ebiten.KeyArrowRight, ebiten.KeyD},
		ActionAttack:       {ebiten.KeySpace},
		ActionMagic:        {ebiten.KeyControlLeft},
		ActionSwitchWeapon: {ebiten.KeyQ},
		ActionSwitchMagic:  {ebiten.KeyE},
		ActionMenu:         {ebiten.KeyM},
		ActionConfirm:      {ebiten.KeyEnter},
	}
}

// Keyboard reads actions from the ebiten keyboard state.
type Keyboard struct {
	bindings map[Action][]ebiten.Key
}

func NewKeyboard() *Keyboard {
	return &Keyboard{bindings: DefaultBindings()}
}

// Pressed reports whether any key bound to a is held.
func (k *Keyboard) Pressed(a Action) bool {
	for _, key := range k.bindings[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// JustPressed reports whether a key bound to a went down this tick.
func (k *Keyboard) JustPressed(a Action) bool {
	for _, key := range k.bindings[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// Click returns the cursor position when the left button went down this tick.
func Click() (x, y int, ok bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y = ebiten.CursorPosition()
	return x, y, true
}

// State is a fixed set of held actions. It drives entities in tests and demos.
type State map[Action]bool

func (s State) Pressed(a Action) bool {
	return s[a]
}

func (s State) JustPressed(a Action) bool {
	return s[a]
}
