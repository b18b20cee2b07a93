package excel

import "errors"

// Load failures surfaced to the user. Both leave the session usable:
// the user re-uploads and triggers processing again.
var (
	// ErrMissingFile: processing was triggered without an upload for the slot.
	ErrMissingFile = errors.New("file not uploaded")

	// ErrUnreadable: the uploaded bytes are not a valid workbook for the
	// declared extension.
	ErrUnreadable = errors.New("cannot read file as a spreadsheet")
)
