package pagedlist

// PageDefaultSize is the default page size if not specified
const PageDefaultSize = 20

// PageMaxSize is the maximum allowed page size
const PageMaxSize = 500

// ClampSize normalizes a requested page size for transport layers: zero or
// negative falls back to the default, oversized requests are capped.
func ClampSize(size int) int {
	if size <= 0 {
		return PageDefaultSize
	}
	if size > PageMaxSize {
		return PageMaxSize
	}
	return size
}
