package directions

import "errors"

var (
	// ErrMissingLocation is returned when "from" or "to" is empty or blank
	ErrMissingLocation = errors.New("missing 'from' or 'to' location")
	// ErrLocationNotFound is returned when the geocoder has no result for a location
	ErrLocationNotFound = errors.New("location could not be geocoded")
)
