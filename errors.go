package gridtable

import "errors"

var (
	// ErrMalformedInput indicates that a serialized dataset or schema
	// input could not be parsed.
	//
	// Errors returned by ParseDataset and ParseSchema wrap this sentinel,
	// so callers can detect parse failures with errors.Is:
	//
	//	if errors.Is(err, gridtable.ErrMalformedInput) {
	//	    // render an error state instead of the table
	//	}
	ErrMalformedInput = errors.New("malformed input")
)
