// Package focus implements keyboard and focus management helpers for form
// UIs: focusing the first invalid field, restoring focus to a control,
// switching focus between a table-of-contents toggle and its first link,
// circular tab navigation and toggling the inert state of a region.
//
// UI handles are modelled as capabilities rather than concrete types. A Ref
// may or may not point at a live target; a target is focusable only when it
// implements Focuser; an Element gains the native inert property when it
// implements InertProperty. Missing capabilities are tolerated silently so
// callers can pass whatever their toolkit currently holds. Adapters for
// in-memory trees, HTML fragments and terminal tab bars live in the dom,
// markup and tui packages.
package focus
