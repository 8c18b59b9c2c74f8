package game

import (
	"github.com/gdamore/tcell/v2"

	"satchel/internal/inventory"
	"satchel/internal/usage"
)

// Action represents a player-requested action from the keyboard.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionSelect
	ActionTogglePanel
	ActionUse
	ActionDrop
	ActionPickup
	ActionCancel
	ActionQuit
)

// keyToAction maps a tcell key event to an action. For ActionSelect the
// second result is the hotbar index.
func keyToAction(ev *tcell.EventKey) (Action, int) {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN, 0
	case tcell.KeyDown:
		return ActionMoveS, 0
	case tcell.KeyRight:
		return ActionMoveE, 0
	case tcell.KeyLeft:
		return ActionMoveW, 0
	case tcell.KeyTab:
		return ActionTogglePanel, 0
	case tcell.KeyEnter:
		return ActionUse, 0
	case tcell.KeyEscape:
		return ActionCancel, 0
	case tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyRune:
	default:
		return ActionNone, 0
	}

	// Rune keys.
	ch := ev.Rune()
	if ch >= '1' && ch <= '9' {
		return ActionSelect, int(ch - '1')
	}
	switch ch {
	case 'k', 'K':
		return ActionMoveN, 0
	case 'j', 'J':
		return ActionMoveS, 0
	case 'l', 'L':
		return ActionMoveE, 0
	case 'h', 'H':
		return ActionMoveW, 0
	case 'i', 'I':
		return ActionTogglePanel, 0
	case 'u', 'U':
		return ActionUse, 0
	case 'q', 'Q':
		return ActionDrop, 0
	case 'g', 'G', ',':
		return ActionPickup, 0
	}
	return ActionNone, 0
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	}
	return 0, 0
}

func (g *Game) handleKey(ev *tcell.EventKey) {
	action, index := keyToAction(ev)
	switch action {
	case ActionMoveN, ActionMoveS, ActionMoveE, ActionMoveW:
		g.sess.Move(actionToDelta(action))

	case ActionSelect:
		g.sess.SelectSlot(index)

	case ActionTogglePanel:
		g.stopHold()
		g.sess.TogglePanel()

	case ActionUse:
		before, _ := g.sess.Hotbar().Get(g.sess.Active())
		g.reportUse(before, g.sess.UseActive())

	case ActionDrop:
		held, _ := g.sess.Hotbar().Get(g.sess.Active())
		if g.sess.DropActive() == usage.ResultDropped {
			g.renderer.Log("You drop the %s.", held.Def.Name)
		}

	case ActionPickup:
		if g.sess.PanelOpen() {
			return
		}
		if n := g.sess.PickupHere(); n > 0 {
			g.renderer.Log("You pick up %d item(s).", n)
		} else if len(g.sess.Ground().At(g.sess.Position())) > 0 {
			g.renderer.Log("Your satchel is full.")
		} else {
			g.renderer.Log("There is nothing here.")
		}

	case ActionCancel:
		switch {
		case !g.sess.Held().Empty():
			g.stopHold()
			if left := g.sess.CancelCursor(); left > 0 {
				g.renderer.Log("No room for %d item(s); they fall to the ground.", left)
			}
		case g.sess.PanelOpen():
			g.stopHold()
			g.sess.TogglePanel()
		default:
			g.quit = true
		}

	case ActionQuit:
		g.quit = true
	}
}

// reportUse logs the outcome of using before, the stack that was in the
// active slot.
func (g *Game) reportUse(before inventory.Stack, r usage.Result) {
	switch r {
	case usage.ResultWorn:
		after, _ := g.sess.Hotbar().Get(g.sess.Active())
		g.renderer.Log("Your %s wears down (%.0f/%.0f).", after.Def.Name, after.Durability, after.Def.Durability)
	case usage.ResultBroke:
		g.renderer.Log("Your %s breaks!", before.Def.Name)
	case usage.ResultNone:
		if before.Empty() {
			g.renderer.Log("Your hand is empty.")
		}
	}
}

// ─── mouse ───────────────────────────────────────────────────────────────────

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

func (g *Game) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	g.renderer.SetMouse(x, y)
	btn := ev.Buttons()

	switch {
	case btn&tcell.WheelUp != 0:
		g.sess.Scroll(-1)
	case btn&tcell.WheelDown != 0:
		g.sess.Scroll(1)
	}

	btn &^= wheelMask
	pressed := btn &^ g.buttons
	released := g.buttons &^ btn
	g.buttons = btn

	layout := g.renderer.Layout()
	ref, onSlot := layout.SlotAt(x, y, g.sess.PanelOpen())

	if pressed&tcell.Button1 != 0 && onSlot {
		g.sess.BeginDrag(ref)
	}
	if released&tcell.Button1 != 0 {
		if _, dragging := g.sess.Dragging(); dragging {
			switch {
			case onSlot:
				g.sess.EndDrag(ref, true)
			case layout.InPanel(x, y):
				g.sess.CancelDrag()
			default:
				g.sess.EndDrag(ref, false)
			}
		}
	}

	if pressed&tcell.Button2 != 0 && onSlot {
		g.sess.BeginHoldTransfer(ref)
		if g.sess.Holding() {
			g.repeater.Start(g.postHoldTick)
		}
	}
	if btn&tcell.Button2 != 0 && onSlot {
		g.sess.HoldOver(ref)
	}
	if released&tcell.Button2 != 0 {
		g.stopHold()
	}
}

func (g *Game) postHoldTick() {
	_ = g.screen.PostEvent(tcell.NewEventInterrupt(holdTick{}))
}

func (g *Game) stopHold() {
	g.repeater.Stop()
	g.sess.EndHoldTransfer()
}
