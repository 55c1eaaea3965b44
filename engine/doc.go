// Package engine drives the orbit visualization: it owns the simulation
// state, the focus/selection mode and the single-threaded frame loop.
//
// Each frame computes the time increment from the speed control, drains
// queued input through the widget layer, reacts to the semantic events it
// returns, advances and draws the planets, draws the widgets and presents the
// screen. A quit event ends the loop before anything else is drawn.
package engine
