package render

import "errors"

var (
	ErrEmptyTag    = errors.New("render: element without tag")
	ErrUnknownKind = errors.New("render: unknown node kind")
)
