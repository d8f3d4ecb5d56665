// Package protokoll implements the core of the MZProtokoll editor: a
// document model for structured meeting minutes, a Markdown round-trip
// codec, a two-pass paginated PDF export, and an editor orchestrator
// that keeps file dialogs and disk I/O off the caller's update loop.
//
// The typical embedding is a GUI whose update loop owns an Editor:
//
//	ed := protokoll.NewEditor(picker)
//	...
//	if err := ed.Save(); err != nil { /* show notice */ }
//	...
//	// once per refresh tick:
//	if ev, ok := ed.Poll(); ok { /* apply ev */ }
package protokoll
