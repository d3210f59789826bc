package tui

import "sort"

// command identifies one edge-triggered player control.
type command int

const (
	cmdRotateLeft command = iota
	cmdRotateRight
	cmdThrust
	cmdFire
)

// heldTracker turns terminal key auto-repeat into edge-triggered commands.
// Terminals report no key-up, only repeated key-downs, so a command counts
// as held while repeats keep arriving and as released once none has arrived
// for a full hold window. The first key-down of a hold emits a start; the
// synthesized release emits a stop. Repeats in between are suppressed.
type heldTracker struct {
	// window is the hold window in ticks; it must exceed the terminal's
	// initial key-repeat delay or a held key flaps between start and stop.
	window int64

	expiry map[command]int64
}

func newHeldTracker(window int64) *heldTracker {
	return &heldTracker{
		window: window,
		expiry: make(map[command]int64),
	}
}

// press registers a key-down at the given tick and reports whether it is the
// start of a new hold.
func (t *heldTracker) press(cmd command, now int64) bool {
	_, held := t.expiry[cmd]
	t.expiry[cmd] = now + t.window
	return !held
}

// held reports whether the command is currently held.
func (t *heldTracker) held(cmd command) bool {
	_, ok := t.expiry[cmd]
	return ok
}

// released returns the commands whose hold window lapsed by the given tick
// and forgets them. Sorted so the resulting stop events are emitted in a
// stable order.
func (t *heldTracker) released(now int64) []command {
	var done []command
	for cmd, exp := range t.expiry {
		if now >= exp {
			done = append(done, cmd)
		}
	}
	for _, cmd := range done {
		delete(t.expiry, cmd)
	}
	sort.Slice(done, func(i, j int) bool { return done[i] < done[j] })
	return done
}

// reset forgets all holds.
func (t *heldTracker) reset() {
	clear(t.expiry)
}
