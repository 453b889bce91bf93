package cli

import "github.com/llehouerou/marquee/internal/errmsg"

// userError is an error whose message is ready to be shown on the terminal.
// The cause stays reachable through errors.Is and errors.As.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }

func (e *userError) Unwrap() error { return e.err }

// failed wraps err with the user-facing message for op.
func failed(op errmsg.Op, err error) error {
	if err == nil {
		return nil
	}
	return &userError{msg: errmsg.Format(op, err), err: err}
}
