package simplecatalog

// Pagination defaults applied when a request carries no positive values.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// normalizePagination applies the default page and limit for non-positive
// inputs. The boundary layer coerces query strings; anything that survives as
// zero or negative falls back to the defaults.
func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// totalPages is ceil(total/limit); zero when there is nothing to page.
func totalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// pageBounds returns the [lo, hi) slice bounds for the given page over a set
// of n elements. A page beyond range yields an empty window. The range check
// runs before the multiplication so an extreme page value cannot overflow.
func pageBounds(page, limit, n int) (int, int) {
	if page-1 > n/limit {
		return n, n
	}
	lo := (page - 1) * limit
	hi := lo + limit
	if hi > n {
		hi = n
	}
	return lo, hi
}
