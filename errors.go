package line

import "errors"

var (
	ErrNoTerminal                 = errors.New("line: input is not a terminal")
	ErrHistoryIndexWithoutHistory = errors.New("line: history index prompt requires history to be enabled")
	ErrNotRaw                     = errors.New("line: terminal is not in raw mode")
	ErrAlreadyRaw                 = errors.New("line: terminal is already in raw mode")
)
