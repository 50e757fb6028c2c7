package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"explode/internal/scene"
)

// keyBindings maps keys to scene actions. Layout follows a US keyboard.
var keyBindings = []struct {
	key    glfw.Key
	action scene.Action
}{
	{glfw.KeyEscape, scene.ActionQuit},
	{glfw.KeyLeftBracket, scene.ActionPhiUp},
	{glfw.KeyRightBracket, scene.ActionPhiDown},
	{glfw.KeyApostrophe, scene.ActionThetaUp},
	{glfw.KeyBackslash, scene.ActionThetaDown},
	{glfw.KeySpace, scene.ActionToggleSpot},
	{glfw.KeyMinus, scene.ActionZoomOut},
	{glfw.KeyEqual, scene.ActionZoomIn},
	{glfw.Key9, scene.ActionDimmer},
	{glfw.Key0, scene.ActionBrighter},
	{glfw.KeyPeriod, scene.ActionCoarseWall},
	{glfw.KeySlash, scene.ActionStep},
	{glfw.KeyP, scene.ActionPause},
	{glfw.KeyR, scene.ActionReset},
}

type Input struct {
	prevKeys map[glfw.Key]bool
	actions  []scene.Action
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Actions returns the actions whose keys went down since the last call. The
// slice is reused between calls.
func (in *Input) Actions(window *glfw.Window) []scene.Action {
	in.actions = in.actions[:0]
	for _, b := range keyBindings {
		if in.JustPressed(window, b.key) {
			in.actions = append(in.actions, b.action)
		}
	}
	return in.actions
}
