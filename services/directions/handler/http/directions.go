package http

import (
	"errors"
	"net/http"

	"github.com/brickroad/brickroad/internal/pkg/logger"
	"github.com/brickroad/brickroad/services/directions"
	"github.com/labstack/echo/v4"
)

// formPage is served at the root and submits to /directions
const formPage = `<html>
<body>
    <form method='get' action='/directions'>
        From: <input name='from' /><br/>
        To: <input name='to' /><br/>
        <input type='submit' value='Get Directions'/>
    </form>
</body>
</html>
`

// DirectionsHandler handles HTTP requests for directions
type DirectionsHandler struct {
	directionsUC directions.DirectionsUC
}

// NewDirectionsHandler creates a new directions HTTP handler
func NewDirectionsHandler(directionsUC directions.DirectionsUC) *DirectionsHandler {
	return &DirectionsHandler{
		directionsUC: directionsUC,
	}
}

// Form serves the HTML form for entering two locations
func (h *DirectionsHandler) Form(c echo.Context) error {
	return c.HTML(http.StatusOK, formPage)
}

// GetDirections answers with plain-text turn-by-turn directions. Failures are
// reported in the body; the status is always 200.
func (h *DirectionsHandler) GetDirections(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	ctx := c.Request().Context()

	result, err := h.directionsUC.GetDirections(ctx, from, to)
	if err != nil && !errors.Is(err, directions.ErrMissingLocation) && !errors.Is(err, directions.ErrLocationNotFound) {
		logger.ErrorCtx(ctx, "Failed to get directions",
			logger.String("from", from),
			logger.String("to", to),
			logger.Err(err))
	}

	return c.String(http.StatusOK, directions.ResponseText(result, err))
}
