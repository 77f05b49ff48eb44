package parser

import "errors"

// Parse failures. All of them are fatal for the stylesheet or document being parsed;
// callers get them wrapped with position details and should stop the run.
var (
	ErrMalformedSelector    = errors.New("malformed selector list")
	ErrUnrecognizedUnit     = errors.New("unrecognized unit")
	ErrMalformedDeclaration = errors.New("malformed declaration")
	ErrMalformedColor       = errors.New("malformed color")
	ErrUnexpectedEOF        = errors.New("unexpected end of stylesheet")
)
