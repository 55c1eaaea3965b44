// Package tui provides the retained widgets drawn over the orbit canvas:
// a slider, a label and buttons, owned by a Manager.
//
// The Manager is the only entry point for input. It consumes raw tcell events
// and returns semantic events (button pressed, slider changed, quit) so the
// frame driver never interprets keys or mouse positions itself.
//
// Usage pattern:
//
//	m := tui.NewManager(w, h)
//	speed := m.AddSlider("speed", tui.Rect{X: 1, W: 20, H: 1}, 0, 100, 1)
//	m.AddButton("realtime", "1 Day/tick", tui.Rect{X: 50, W: 12, H: 1}, 'r')
//
//	for _, ev := range m.ProcessEvent(raw) {
//	    // react to ev.Kind / ev.ID
//	}
//	m.Update(elapsed)
//	m.Draw(screen)
package tui
