package models

// Index is a position in the displayed contact list. The zero value is the
// first entry.
type Index struct {
	zeroBased int
}

// IndexFromOneBased converts a user-facing 1-based position.
func IndexFromOneBased(n int) Index { return Index{zeroBased: n - 1} }

// IndexFromZeroBased converts a slice offset.
func IndexFromZeroBased(n int) Index { return Index{zeroBased: n} }

func (i Index) ZeroBased() int { return i.zeroBased }
func (i Index) OneBased() int { return i.zeroBased + 1 }
