package llm

import (
	"context"
	"fmt"
)

// MockClient is a mock implementation of Completer for local development.
type MockClient struct{}

// NewMockClient creates a new mock completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements the Completer interface.
var _ Completer = (*MockClient)(nil)

// Complete returns a canned paraphrase so the augmented path can be
// exercised without a real API key.
func (m *MockClient) Complete(ctx context.Context, system string, history []Message, user string) (string, error) {
	return fmt.Sprintf("[MOCK] %s", truncate(user, 200)), nil
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
