package models

// ProductSnapshot is the display view of the product a movement refers to,
// resolved exactly once at read time: from the live product row when it
// still exists, or from the movement's cached fields when it is gone.
type ProductSnapshot struct {
	Name     string
	Category string
	ImageURL *string
	// Live reports whether the snapshot came from a live join. False means
	// the product has been deleted and the cached copies are in use.
	Live bool
}

// HistoryEntry is one row of the browsable movement history: the movement
// itself plus its resolved product snapshot.
type HistoryEntry struct {
	Movement Movement
	Product  ProductSnapshot
}

// ResolveSnapshot picks live fields when present, cached fields otherwise.
// live may be nil (product deleted).
func ResolveSnapshot(m *Movement, live *Product) ProductSnapshot {
	if live != nil {
		return ProductSnapshot{
			Name:     live.Name,
			Category: live.Category,
			ImageURL: live.ImageURL,
			Live:     true,
		}
	}
	return ProductSnapshot{
		Name:     m.Name,
		Category: m.Category,
		ImageURL: m.ImageURL,
		Live:     false,
	}
}
