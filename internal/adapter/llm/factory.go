package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvTicketbotMode is the environment variable name for mode selection.
	EnvTicketbotMode = "TICKETBOT_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewCompleter creates a completion client. With TICKETBOT_MODE=MOCK it
// returns a MockClient; with an empty API key it returns nil, which selects
// deterministic-only composition (not an error).
func NewCompleter(baseURL, apiKey, model string, timeout time.Duration) Completer {
	if os.Getenv(EnvTicketbotMode) == ModeMock {
		log.Println("TICKETBOT_MODE=MOCK detected, using mock completion client")
		return NewMockClient()
	}
	if apiKey == "" {
		return nil
	}
	return NewClient(baseURL, apiKey, model, timeout)
}
