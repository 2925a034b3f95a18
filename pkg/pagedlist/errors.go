package pagedlist

type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidPageSize is returned by the paged constructors when the
	// requested page size is not positive. No instance is returned.
	ErrInvalidPageSize Error = "pagedlist: page size must be positive"

	// ErrResolverNotSet is returned by Locator before a resolver is wired.
	ErrResolverNotSet Error = "pagedlist: locator resolver is not set"
)
