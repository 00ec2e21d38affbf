package paging

import "fmt"

const (
	DefaultSize = 20
	MaxSize     = 1000
)

// Request is a 0-based page number and a page size.
type Request struct {
	Page int
	Size int
}

// Normalize fills defaults and clamps the size. Negative pages are an error.
func (r Request) Normalize() (Request, error) {
	if r.Page < 0 {
		return r, fmt.Errorf("page must be >= 0")
	}
	if r.Size < 0 {
		return r, fmt.Errorf("size must be >= 0")
	}
	if r.Size == 0 {
		r.Size = DefaultSize
	}
	if r.Size > MaxSize {
		r.Size = MaxSize
	}
	return r, nil
}

func (r Request) Offset() int { return r.Page * r.Size }
func (r Request) Limit() int  { return r.Size }

// Page is one slice of a larger result set.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func NewPage[T any](content []T, req Request, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// Map projects every element of p.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Content))
	for _, v := range p.Content {
		out = append(out, fn(v))
	}
	return Page[U]{
		Content:       out,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
