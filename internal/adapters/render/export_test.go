package render

// FormatSignPosition exposes the longitude formatter for testing.
var FormatSignPosition = formatSignPosition
