package pull

import "strings"

// Props describes guarantees a sequence makes about its elements. Adapters
// must propagate only the guarantees they themselves keep and revoke the rest:
// a flag that is merely inherited but no longer true is a contract violation
// for downstream consumers.
type Props struct {
	// Ordered means the sequence has a defined encounter order.
	Ordered bool
	// Sized means Size reports the exact number of remaining elements.
	Sized bool
	// Sorted means elements appear in non-decreasing order.
	Sorted bool
	// Distinct means no two elements are equal.
	Distinct bool
}

// Intersect keeps only the guarantees present in both property sets. Adapters
// over several sources can promise at most what all of them promise.
func (p Props) Intersect(q Props) Props {
	return Props{
		Ordered:  p.Ordered && q.Ordered,
		Sized:    p.Sized && q.Sized,
		Sorted:   p.Sorted && q.Sorted,
		Distinct: p.Distinct && q.Distinct,
	}
}

// WithoutSized revokes the exact-size guarantee.
func (p Props) WithoutSized() Props {
	p.Sized = false
	return p
}

// WithoutSorted revokes the sortedness guarantee.
func (p Props) WithoutSorted() Props {
	p.Sorted = false
	return p
}

// WithoutDistinct revokes the distinctness guarantee.
func (p Props) WithoutDistinct() Props {
	p.Distinct = false
	return p
}

func (p Props) String() string {
	flags := make([]string, 0, 4)
	if p.Ordered {
		flags = append(flags, "ordered")
	}
	if p.Sized {
		flags = append(flags, "sized")
	}
	if p.Sorted {
		flags = append(flags, "sorted")
	}
	if p.Distinct {
		flags = append(flags, "distinct")
	}
	if len(flags) == 0 {
		return "none"
	}
	return strings.Join(flags, "|")
}
