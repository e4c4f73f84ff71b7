package workbook

import "errors"

// Sentinel kinds for workbook I/O errors.
var (
	ErrOpen           = errors.New("open workbook failed")
	ErrMissingColumns = errors.New("required columns missing")
	ErrEmptySheet     = errors.New("sheet has no rows")
	ErrWrite          = errors.New("write workbook failed")
)
