package pdi

import "errors"

var (
	ErrNilLogger     = errors.New("pdi: logger cannot be nil")
	ErrNilStore      = errors.New("pdi: session store cannot be nil")
	ErrNilHTTPClient = errors.New("pdi: http client cannot be nil")
	ErrNilRegisterer = errors.New("pdi: metrics registerer cannot be nil")
)
