package handlers

import "testing"

func TestParsePaginationParamsDefaults(t *testing.T) {
	page, limit, err := parsePaginationParams("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 1 || limit != 20 {
		t.Fatalf("expected defaults 1/20, got %d/%d", page, limit)
	}
}

func TestParsePaginationParamsRejectsBadInput(t *testing.T) {
	tests := [][2]string{
		{"0", "10"},
		{"-1", "10"},
		{"1", "0"},
		{"abc", "10"},
		{"1", "xyz"},
	}
	for _, tt := range tests {
		if _, _, err := parsePaginationParams(tt[0], tt[1]); err == nil {
			t.Fatalf("expected error for page=%q limit=%q", tt[0], tt[1])
		}
	}
}

func TestPaginateSlices(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	if got := paginate(items, 1, 2); len(got) != 2 || got[0] != 1 {
		t.Fatalf("page 1: got %v", got)
	}
	if got := paginate(items, 3, 2); len(got) != 1 || got[0] != 5 {
		t.Fatalf("page 3: got %v", got)
	}
	if got := paginate(items, 4, 2); len(got) != 0 {
		t.Fatalf("past the end: got %v", got)
	}
}
