package dlist

type listError string

var _ error = listError("")

func (err listError) Error() string {
	return string(err)
}

const (
	ErrOutOfRange = listError("index out of range")
)
