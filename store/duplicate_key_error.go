package store

type DuplicateKeyError struct {
	innerError error
}

func NewDuplicateKeyError(innerError error) DuplicateKeyError {
	return DuplicateKeyError{
		innerError: innerError,
	}
}

func (d DuplicateKeyError) Error() string {
	return d.innerError.Error()
}
