package suitex

import "context"

// Host is what a generation run needs from its environment: a text prompt,
// file creation and a notification channel.
type Host interface {
	// PromptForText returns "" when the user cancels.
	PromptForText(ctx context.Context, prompt, placeholder string) (string, error)
	CreateFile(ctx context.Context, path string) error
	WriteFile(ctx context.Context, path, text string) error
	ShowMessage(ctx context.Context, text string)
}
