package catalog

import "errors"

var (
	ErrNotFound = errors.New("service not found")
	ErrNoMatch  = errors.New("no service matches the requested device and issue")
)
