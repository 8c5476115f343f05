package error

// GenericError is implemented by every error that knows how it should be
// rendered at the HTTP boundary.
type GenericError interface {
	Error() string
	ErrCode() string
	StatusCode() int
}
