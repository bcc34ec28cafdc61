package gdrive

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to classify; the structured types below wrap
// these and carry diagnostics.
var (
	ErrInvalidArgument     = errors.New("gdrive: invalid argument")
	ErrNotAuthorized       = errors.New("gdrive: not authorized")
	ErrAlreadyAuthorized   = errors.New("gdrive: already authorized")
	ErrSessionClosed       = errors.New("gdrive: session closed")
	ErrItemType            = errors.New("gdrive: item type mismatch")
	ErrCopyFailed          = errors.New("gdrive: copy failed")
	ErrUploadFailed        = errors.New("gdrive: upload failed")
	ErrTrashFailed         = errors.New("gdrive: trash failed")
	ErrRestoreFailed       = errors.New("gdrive: restore failed")
	ErrUnsupportedMimeType = errors.New("gdrive: unsupported MIME type")
)

// ItemTypeError reports an operation that expected one kind of item (folder
// or regular file) and fetched another. No mutating request is issued when
// this is returned.
type ItemTypeError struct {
	ID   string
	Got  string
	Want string
}

func (e *ItemTypeError) Error() string {
	return fmt.Sprintf("gdrive: item %s has MIME type %q, want %q", e.ID, e.Got, e.Want)
}

func (e *ItemTypeError) Unwrap() error { return ErrItemType }

// OpError wraps a per-operation remote failure (copy, trash, restore) with
// its sentinel and the underlying cause when one exists.
type OpError struct {
	Op    string
	ID    string
	Err   error // sentinel, for errors.Is
	Cause error
}

func (e *OpError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("gdrive: %s %s: %v: %v", e.Op, e.ID, e.Err, e.Cause)
	}

	return fmt.Sprintf("gdrive: %s %s: %v", e.Op, e.ID, e.Err)
}

func (e *OpError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}

	return []error{e.Err}
}

// UploadError reports a resumable upload that did not reach the completed
// state, or completed without a server-assigned ID. Context cancellation is
// never wrapped in an UploadError.
type UploadError struct {
	Status string // server-reported terminal status, or "completed"
	Reason string
	Cause  error
}

func (e *UploadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("gdrive: upload %s: %s: %v", e.Status, e.Reason, e.Cause)
	}

	return fmt.Sprintf("gdrive: upload %s: %s", e.Status, e.Reason)
}

func (e *UploadError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrUploadFailed, e.Cause}
	}

	return []error{ErrUploadFailed}
}

// UnsupportedMimeTypeError reports a Workspace type with no export mapping or
// a concrete type with no known file extension, detected before any network
// download or export is attempted.
type UnsupportedMimeTypeError struct {
	MimeType string
	Reason   string
}

func (e *UnsupportedMimeTypeError) Error() string {
	return fmt.Sprintf("gdrive: %s: %s", e.Reason, e.MimeType)
}

func (e *UnsupportedMimeTypeError) Unwrap() error { return ErrUnsupportedMimeType }

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidArgument)...)
}

// requireNonEmpty validates required string arguments locally, before any
// network call.
func requireNonEmpty(name, value string) error {
	if value == "" {
		return invalidArgf("%s must not be empty", name)
	}

	return nil
}
