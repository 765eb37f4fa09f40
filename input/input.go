// Package input turns keyboard, mouse, touch and gamepad edges into the
// game's four signals.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/ungravity/gameplay"
)

// Input latches just-pressed edges until they are consumed.
type Input struct {
	flip    bool
	pause   bool
	restart bool
	next    bool

	touches []ebiten.TouchID
}

func New() *Input {
	return &Input{}
}

// Update polls devices. Call it once per ebiten Update.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		i.flip = true
	}
	i.touches = inpututil.AppendJustPressedTouchIDs(i.touches[:0])
	if len(i.touches) > 0 {
		i.flip = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		i.pause = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		i.restart = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		i.next = true
	}

	// Gamepad: A flips, Start pauses, Back restarts, right bumper skips.
	for _, gid := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			i.flip = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
			i.pause = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterLeft) {
			i.restart = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonFrontTopRight) {
			i.next = true
		}
	}
}

// Press latches a signal as if its key had been pressed. The overlay buttons
// use it.
func (i *Input) Press(s gameplay.Signals) {
	i.flip = i.flip || s.Flip
	i.pause = i.pause || s.Pause
	i.restart = i.restart || s.Restart
	i.next = i.next || s.Next
}

func (i *Input) ConsumeFlip() bool    { return consume(&i.flip) }
func (i *Input) ConsumePause() bool   { return consume(&i.pause) }
func (i *Input) ConsumeRestart() bool { return consume(&i.restart) }
func (i *Input) ConsumeNext() bool    { return consume(&i.next) }

// Consume reads and clears all four signals.
func (i *Input) Consume() gameplay.Signals {
	return gameplay.Signals{
		Flip:    i.ConsumeFlip(),
		Pause:   i.ConsumePause(),
		Restart: i.ConsumeRestart(),
		Next:    i.ConsumeNext(),
	}
}

func consume(flag *bool) bool {
	v := *flag
	*flag = false
	return v
}
