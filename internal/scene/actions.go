package scene

// Action is a user command, decoupled from whatever key produced it.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPhiUp
	ActionPhiDown
	ActionThetaUp
	ActionThetaDown
	ActionToggleSpot
	ActionZoomOut
	ActionZoomIn
	ActionDimmer
	ActionBrighter
	ActionCoarseWall
	ActionStep
	ActionPause
	ActionReset
)

var actionNames = [...]string{
	ActionNone:       "none",
	ActionQuit:       "quit",
	ActionPhiUp:      "phi-up",
	ActionPhiDown:    "phi-down",
	ActionThetaUp:    "theta-up",
	ActionThetaDown:  "theta-down",
	ActionToggleSpot: "toggle-spot",
	ActionZoomOut:    "zoom-out",
	ActionZoomIn:     "zoom-in",
	ActionDimmer:     "dimmer",
	ActionBrighter:   "brighter",
	ActionCoarseWall: "coarse-wall",
	ActionStep:       "step",
	ActionPause:      "pause",
	ActionReset:      "reset",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}
