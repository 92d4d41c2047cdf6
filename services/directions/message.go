package directions

import (
	"errors"

	"github.com/brickroad/brickroad/internal/pkg/models"
)

// User-facing messages for the directions endpoint
const (
	MessageMissingLocation  = "Missing 'from' or 'to' parameters."
	MessageLocationNotFound = "Could not geocode one or both locations."
	MessageErrorPrefix      = "An error occurred:\n"
)

// ResponseText maps the outcome of a directions lookup to the plain-text body
// served to the user
func ResponseText(result *models.Directions, err error) string {
	switch {
	case errors.Is(err, ErrMissingLocation):
		return MessageMissingLocation
	case errors.Is(err, ErrLocationNotFound):
		return MessageLocationNotFound
	case err != nil:
		return MessageErrorPrefix + err.Error()
	case result == nil:
		return MessageErrorPrefix + "no directions returned"
	}
	return result.Render()
}
