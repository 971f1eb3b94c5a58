package event

import "context"

// UseCase is the event extraction use case exposed to delivery layers.
type UseCase interface {
	// Convert turns free-form text (optionally with an image) into an
	// ordered sequence of validated calendar events.
	Convert(ctx context.Context, input ConvertInput) (ConvertOutput, error)
}
