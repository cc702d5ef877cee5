package dynarr

type arrayError string

var _ error = arrayError("")

func (err arrayError) Error() string {
	return string(err)
}

const (
	ErrOutOfRange = arrayError("index out of range")
)
