package constants

// Redis key formats
const (
	// Directions cache
	KeyGeocode = "geocode:%s"  // Format: geocode:{normalized query}
	KeyRoute   = "route:%s:%s" // Format: route:{from geohash}:{to geohash}

	// Rate Limiting
	KeyRateLimitIP = "rate:ip" // Prefix: rate:ip:{path}:{ip}
)
