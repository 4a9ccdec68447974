package sessiontransport

import "errors"

// ErrUnknownTransport is returned by NewFromConfig for an unsupported kind.
var ErrUnknownTransport = errors.New("sessiontransport: unknown transport")
