// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines      = 2
	LoaderLines      = 1
	LoadMoreLines    = 1
	ToastLines       = 1
	MainLeftPadding  = 1
	SearchPromptSize = 3

	ItemRightPadding  = 1
	ItemSafetyPadding = 1
)
