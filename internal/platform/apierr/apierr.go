package apierr

import "fmt"

// Error is a transport-level failure detected before a request reaches the
// service layer (bad path ids, malformed bodies, paging parameters).
type Error struct {
	Status int
	Code   string
	Err    error
	Fields map[string]string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// WithField returns a copy of e carrying one more field message.
func (e *Error) WithField(field, msg string) *Error {
	out := *e
	out.Fields = make(map[string]string, len(e.Fields)+1)
	for k, v := range e.Fields {
		out.Fields[k] = v
	}
	out.Fields[field] = msg
	return &out
}
