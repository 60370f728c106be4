package state

import "fmt"

// ConfigurationError marks invalid builder input; fatal to construction.
// The state is never partially built when this is returned.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// IllegalAction marks a runtime action rejected by the current phase or
// betting rules: wrong actor, a raise below minimum, a fold with nothing
// to fold to, posting when ineligible. The state is left unchanged.
type IllegalAction struct {
	Reason string
}

func (e *IllegalAction) Error() string {
	return fmt.Sprintf("illegal action: %s", e.Reason)
}

// ExhaustedDeck marks a deal requested against an empty deck.
type ExhaustedDeck struct {
	Requested, Remaining int
}

func (e *ExhaustedDeck) Error() string {
	return fmt.Sprintf("exhausted deck: requested %d, %d remaining", e.Requested, e.Remaining)
}
