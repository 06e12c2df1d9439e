package domain

import "errors"

var (
	ErrMissingField        = errors.New("missing required field")
	ErrDateParse           = errors.New("no parseable date")
	ErrUnparseableAmount   = errors.New("unparseable premium amount")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrTemplateNotFound    = errors.New("template file not found")
	ErrRenderFailed        = errors.New("template rendering failed")
)
