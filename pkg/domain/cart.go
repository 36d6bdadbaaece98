package domain

import "sort"

// Cart maps product ids to strictly positive quantities.
type Cart map[ProductID]int

// Snapshot returns an independent copy of the cart without non-positive entries.
func (c Cart) Snapshot() Cart {
	out := make(Cart, len(c))
	for id, qty := range c {
		if qty > 0 {
			out[id] = qty
		}
	}
	return out
}

// IsEmpty reports whether the cart holds no positive entries.
func (c Cart) IsEmpty() bool {
	for _, qty := range c {
		if qty > 0 {
			return false
		}
	}
	return true
}

// ProductIDs returns the distinct product ids in ascending order.
func (c Cart) ProductIDs() []ProductID {
	ids := make([]ProductID, 0, len(c))
	for id, qty := range c {
		if qty > 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
