package pagedlist

// LocatorResolver maps a page number to an opaque locator, typically a URL.
// Only the consumer knows how to form locators, so the resolver is injected
// after construction and the list returns its output verbatim.
type LocatorResolver func(page int) string

// SetLocatorResolver wires the resolver used by Locator. Set it once, before
// any Locator call; reassignment concurrent with reads is not supported.
func (l *PagedList[T]) SetLocatorResolver(r LocatorResolver) {
	l.resolver = r
}

// Locator resolves a locator for the given page number. It fails with
// ErrResolverNotSet when no resolver has been wired, which is a usage bug in
// the consumer rather than a data error. The resolver is invoked lazily, per
// requested page; results are not cached or interpreted.
func (l *PagedList[T]) Locator(page int) (string, error) {
	if l.resolver == nil {
		return "", ErrResolverNotSet
	}
	return l.resolver(page), nil
}

// MustLocator is like Locator but panics when the resolver is missing.
// Use in render paths where an unwired resolver must surface immediately.
func (l *PagedList[T]) MustLocator(page int) string {
	locator, err := l.Locator(page)
	if err != nil {
		panic(err)
	}
	return locator
}
