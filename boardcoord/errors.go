package boardcoord

import "errors"

// ErrInvalidSquare indicates a file/rank byte pair outside 'a'-'h' / '1'-'8'.
var ErrInvalidSquare = errors.New("boardcoord: file must be a-h and rank must be 1-8")

// ErrOffBoard indicates a point passed to FromPoint does not fall within
// the given tol of any square centre.
var ErrOffBoard = errors.New("boardcoord: point does not match a square centre")
