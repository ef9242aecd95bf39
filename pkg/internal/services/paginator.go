package services

// Page is one bounded slice of an ordered result set, plus the
// metadata listings render their pagers from.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"number"`
	Size        int  `json:"size"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Paginate slices the ordered items into the 1-indexed page of the
// given size. A page number below one falls back to the first page, a
// number past the end clips to the last valid page. Pure function, so
// every listing view shares it.
func Paginate[T any](items []T, number int, size int) Page[T] {
	if size < 1 {
		size = 1
	}

	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	if number < 1 {
		number = 1
	} else if number > totalPages {
		number = totalPages
	}

	begin := (number - 1) * size
	end := begin + size
	if begin > len(items) {
		begin = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:       items[begin:end],
		Number:      number,
		Size:        size,
		Total:       len(items),
		TotalPages:  totalPages,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}
