package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrMessageNotFound    = fmt.Errorf("message not found")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrEmptyMessage       = fmt.Errorf("message must contain text or an attachment")
	ErrAttachmentMismatch = fmt.Errorf("attachment content type does not match its data")
	ErrSelfFollow         = fmt.Errorf("a user cannot follow themselves")
	ErrMessageAlreadyGone = fmt.Errorf("message already deleted")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
)
