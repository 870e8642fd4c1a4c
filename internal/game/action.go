package game

import "time"

// Action is a discrete logical input, already decoded from a key press by
// the platform layer. The engine never sees raw key codes.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionBuy
	ActionClick
	ActionViewPassive
	ActionViewClick
	ActionViewAchievements
	ActionToggleHelp
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionBuy:
		return "Buy"
	case ActionClick:
		return "Click"
	case ActionViewPassive:
		return "ViewPassive"
	case ActionViewClick:
		return "ViewClick"
	case ActionViewAchievements:
		return "ViewAchievements"
	case ActionToggleHelp:
		return "ToggleHelp"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Apply dispatches a decoded input action onto the session. ActionQuit ends
// the driver loop and is the platform's concern; it is ignored here, as is
// ActionNone.
func (s *State) Apply(a Action, now time.Time) {
	switch a {
	case ActionMoveUp:
		s.SelectPrevious()
	case ActionMoveDown:
		s.SelectNext()
	case ActionBuy:
		s.PurchaseSelected()
	case ActionClick:
		s.Click(now)
	case ActionViewPassive:
		s.SwitchView(ViewPassive)
	case ActionViewClick:
		s.SwitchView(ViewClick)
	case ActionViewAchievements:
		s.SwitchView(ViewAchievements)
	case ActionToggleHelp:
		s.ToggleHelp()
	}
}
