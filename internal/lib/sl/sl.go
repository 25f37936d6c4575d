package sl

import (
	"log/slog"
)

// Err lets handlers attach an error to slog output as a plain attribute.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
