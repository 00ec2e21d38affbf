package paging

import "testing"

func TestNormalize(t *testing.T) {
	got, err := Request{}.Normalize()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Size != DefaultSize || got.Page != 0 {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	got, _ = Request{Page: 2, Size: 5000}.Normalize()
	if got.Size != MaxSize || got.Offset() != 2*MaxSize {
		t.Fatalf("unexpected clamp: %+v offset=%d", got, got.Offset())
	}
	if _, err := (Request{Page: -1}).Normalize(); err == nil {
		t.Fatalf("expected error for negative page")
	}
}

func TestNewPageTotals(t *testing.T) {
	p := NewPage([]int{1, 2}, Request{Page: 1, Size: 2}, 5)
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages)
	}
	empty := NewPage[int](nil, Request{Size: 10}, 0)
	if empty.Content == nil || empty.TotalPages != 0 {
		t.Fatalf("unexpected empty page: %+v", empty)
	}
	mapped := Map(p, func(v int) string { return string(rune('a' + v)) })
	if mapped.Content[1] != "c" || mapped.TotalElements != 5 {
		t.Fatalf("unexpected mapped page: %+v", mapped)
	}
}
