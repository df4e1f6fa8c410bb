// Package llm provides the completion client used for phrasing augmentation.
package llm

import "context"

// Message is a single chat message passed as completion context.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer produces a completion for a system instruction, a bounded
// message history, and one user turn. Implementations may fail or time out;
// callers must treat any error as "use the deterministic text instead" and
// never surface it to the end user.
type Completer interface {
	Complete(ctx context.Context, system string, history []Message, user string) (string, error)
}

// Ensure Client implements the Completer interface.
var _ Completer = (*Client)(nil)
