package errors

// ERR identifies the kind of failure an Error carries. Codes are stable and
// are what Is() compares, so callers can match on the kind without caring
// about the message.
type ERR int32

const (
	ERR_UNKNOWN ERR = iota
	ERR_ERROR
	ERR_INVALID_ARGUMENT
	ERR_INSUFFICIENT_BYTES
	ERR_INVALID_FORMAT
)

var errName = map[ERR]string{
	ERR_UNKNOWN:            "ERR_UNKNOWN",
	ERR_ERROR:              "ERR_ERROR",
	ERR_INVALID_ARGUMENT:   "ERR_INVALID_ARGUMENT",
	ERR_INSUFFICIENT_BYTES: "ERR_INSUFFICIENT_BYTES",
	ERR_INVALID_FORMAT:     "ERR_INVALID_FORMAT",
}

func (e ERR) String() string {
	if name, ok := errName[e]; ok {
		return name
	}

	return "ERR_UNKNOWN"
}

var (
	ErrUnknown           = New(ERR_UNKNOWN, "unknown error")
	ErrError             = New(ERR_ERROR, "generic error")
	ErrInvalidArgument   = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrInsufficientBytes = New(ERR_INSUFFICIENT_BYTES, "insufficient bytes")
	ErrInvalidFormat     = New(ERR_INVALID_FORMAT, "invalid format")
)

// errors initialization functions

func NewUnknownError(message string, params ...interface{}) error {
	return New(ERR_UNKNOWN, message, params...)
}

func NewError(message string, params ...interface{}) error {
	return New(ERR_ERROR, message, params...)
}

func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}

func NewInsufficientBytesError(message string, params ...interface{}) error {
	return New(ERR_INSUFFICIENT_BYTES, message, params...)
}

func NewInvalidFormatError(message string, params ...interface{}) error {
	return New(ERR_INVALID_FORMAT, message, params...)
}
