package mapfile

type fileError string

var _ error = fileError("")

func (err fileError) Error() string {
	return string(err)
}

const (
	ErrZeroValue    = fileError("value must be at least 1 byte")
	ErrFull         = fileError("file is full")
	ErrReadOnly     = fileError("file is opened read-only")
	ErrFileTooSmall = fileError("file too small")
	ErrHeadSize     = fileError("invalid header size")
	ErrKeySize      = fileError("invalid key size")
	ErrValSize      = fileError("invalid value size")
	ErrRecSize      = fileError("invalid record size")
	ErrNoBuckets    = fileError("file has no buckets")
	ErrCapacity     = fileError("invalid capacity")
	ErrFileSize     = fileError("invalid file size")
)
