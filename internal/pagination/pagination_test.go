package pagination

import "testing"

func TestPageSlice(t *testing.T) {
	items := make([]int, 0, 45)
	for i := 1; i <= 45; i++ {
		items = append(items, i)
	}

	t.Run("defaults", func(t *testing.T) {
		page := PageSlice(items, PageRequest{})
		if page.Page != 1 || page.PageSize != 20 {
			t.Errorf("expected defaults 1/20, got %d/%d", page.Page, page.PageSize)
		}
		if len(page.Data) != 20 || page.Data[0] != 1 {
			t.Errorf("expected first 20 items, got %d starting at %v", len(page.Data), page.Data[0])
		}
		if page.TotalItems != 45 || page.TotalPages != 3 {
			t.Errorf("expected 45 items over 3 pages, got %d/%d", page.TotalItems, page.TotalPages)
		}
	})

	t.Run("last_partial_page", func(t *testing.T) {
		page := PageSlice(items, PageRequest{Page: 3, PageSize: 20})
		if len(page.Data) != 5 || page.Data[0] != 41 {
			t.Errorf("expected items 41..45, got %v", page.Data)
		}
	})

	t.Run("page_past_end_is_empty", func(t *testing.T) {
		page := PageSlice(items, PageRequest{Page: 9, PageSize: 20})
		if len(page.Data) != 0 {
			t.Errorf("expected empty page, got %v", page.Data)
		}
		if page.TotalItems != 45 {
			t.Errorf("metadata must survive empty pages, got %d", page.TotalItems)
		}
	})

	t.Run("nil_data_never_returned", func(t *testing.T) {
		page := PageSlice([]int(nil), PageRequest{})
		if page.Data == nil {
			t.Error("expected empty slice, got nil")
		}
	})
}
