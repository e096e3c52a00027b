package translate

import "fmt"

// UnsupportedError is returned for shapes of the meta-model the translator
// has no translation for. It aborts the whole pass.
type UnsupportedError struct {
	Shape  string
	Detail string
	Err    error
}

func (e *UnsupportedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unsupported %s: %s: %s", e.Shape, e.Err.Error(), e.Detail)
	}

	return fmt.Sprintf("unsupported %s: %s", e.Shape, e.Detail)
}

func (e *UnsupportedError) Unwrap() error {
	return e.Err
}

func unsupportedf(shape string, format string, args ...any) *UnsupportedError {
	return &UnsupportedError{
		Shape:  shape,
		Detail: fmt.Sprintf(format, args...),
	}
}
