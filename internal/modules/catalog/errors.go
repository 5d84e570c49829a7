package catalog

import "errors"

var (
	ErrForbidden    = errors.New("forbidden")
	ErrShopNotFound = errors.New("shop not found")
)
