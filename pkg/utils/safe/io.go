package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/umlindi-lab/wardrisk/pkg/utils/logging"
)

// Close closes a read-side closer where a failure cannot affect durable
// data; the error is logged instead of returned. Nil closers are ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.Any("error", err))
	}
}

// Copy streams src to dst, logging any error. Used when the response is
// already committed and the error can only be reported, not returned.
func Copy(ctx context.Context, dst io.Writer, src io.Reader) {
	if _, err := io.Copy(dst, src); err != nil {
		logging.From(ctx).Error("Failed to copy", slog.Any("error", err))
	}
}
