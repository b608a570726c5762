package domain

// DefaultPageLimit is used when a list request carries no usable limit
const DefaultPageLimit = 10

// QueryOptions selects one page of the insertion-ordered collection.
// Page is 1-based.
type QueryOptions struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Normalize applies defaults: page < 1 becomes 1, limit < 1 becomes defaultLimit
func (o QueryOptions) Normalize(defaultLimit int) QueryOptions {
	if defaultLimit < 1 {
		defaultLimit = DefaultPageLimit
	}
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = defaultLimit
	}
	return o
}

// Bounds returns the half-open index range [start, end) of the page within a
// collection of total records. A page past the end yields start == end == total.
// Page and Limit are never multiplied before the page is known to fit, so
// arbitrarily large values cannot overflow.
func (o QueryOptions) Bounds(total int) (start, end int) {
	if total <= 0 || o.Page < 1 || o.Limit < 1 {
		return 0, 0
	}
	if o.Page > o.TotalPages(total) {
		return total, total
	}

	start = (o.Page - 1) * o.Limit
	end = total
	if o.Limit < total-start {
		end = start + o.Limit
	}
	return start, end
}

// TotalPages returns how many pages of o.Limit records are needed for total records.
// An empty collection still has one (empty) page.
func (o QueryOptions) TotalPages(total int) int {
	if o.Limit < 1 || total <= 0 {
		return 1
	}
	return (total-1)/o.Limit + 1
}
