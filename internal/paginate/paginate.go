// Package paginate computes bounded windows over ordered collections.
// It is pure and deterministic, boundary policy (page and size limits)
// belongs to the caller.
package paginate

import "errors"

// ErrPageOutOfRange is returned when the requested window starts at or
// beyond the end of the collection.
var ErrPageOutOfRange = errors.New("page out of range")

// Page describes a window [Start, End) over a collection of Total elements.
type Page struct {
	Start      int `json:"-"`
	End        int `json:"-"`
	Number     int `json:"page"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// New computes the window for a 1-based page number.
// TotalPages is ceil(total/size).
func New(total, number, size int) (*Page, error) {
	start := (number - 1) * size
	if start >= total {
		return nil, ErrPageOutOfRange
	}

	end := start + size
	if end > total {
		end = total
	}

	return &Page{
		Start:      start,
		End:        end,
		Number:     number,
		Size:       size,
		Total:      total,
		TotalPages: (total + size - 1) / size,
	}, nil
}

// Slice applies the window to the backing collection.
func Slice[T any](items []T, p *Page) []T {
	return items[p.Start:p.End]
}

// Offset returns up to limit items starting at offset.
// An offset at or beyond the end yields an empty slice, not an error.
func Offset[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
