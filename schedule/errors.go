package schedule

import (
	"github.com/pkg/errors"

	"github.com/vegri/HopcroftKarpAlgorithm/builder"
)

var (
	// ErrMalformedToken indicates a token that does not parse as required.
	ErrMalformedToken = errors.New("schedule: malformed token")

	// ErrIndexOutOfRange indicates an excluded date outside 1..N. It is the
	// builder's sentinel so callers can test either package.
	ErrIndexOutOfRange = builder.ErrIndexOutOfRange

	// ErrDuplicateName indicates the same person listed twice in one instance.
	ErrDuplicateName = errors.New("schedule: duplicate name")

	// ErrUnexpectedEOF indicates input ending before all N records were read.
	ErrUnexpectedEOF = errors.New("schedule: unexpected end of input")
)
