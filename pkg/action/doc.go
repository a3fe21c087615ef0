// Package action describes requests that assistive technologies make of
// the application: an action, the node it targets and, for some actions,
// a payload.
//
// Requests travel in the opposite direction to tree updates. A platform
// adapter decodes them from the native API, checks them with
// [Request.Validate], and hands them to the application's [Handler].
//
// # Payloads
//
// [Data] is a closed set of payload types:
//
//	CustomAction      action id chosen by the application
//	Value             replacement text or a new string value
//	NumericValue      a new numeric value
//	ScrollTargetRect  the part of the target to bring into view
//	ScrollToPoint     a point in the target's parent space
//	SetScrollOffset   a scroll position in the target's own space
//	SetTextSelection  a new selection
//
// Which payload each action needs is listed on [Request.Validate].
package action
