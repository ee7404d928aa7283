package ports

import "context"

// Generator dispatches a prompt to the external generative backend and
// returns the raw (possibly fence-wrapped) model output. Retries are the
// caller's policy, not the gateway's.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
