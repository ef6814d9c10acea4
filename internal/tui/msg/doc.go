// Package msg defines the message types used by the TUI's Bubbletea event loop.
//
// The drawer never writes the selection itself. It turns each facet
// notification into a [FilterChangeMsg] or [FilterClearMsg] and returns it as a
// command; the root model, which owns the selection, handles the message.
// Catalog reloads and errors travel the same way.
package msg
