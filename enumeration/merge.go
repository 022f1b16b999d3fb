package enumeration

import "object-enumerator/internal/optional"

// canMerge reports whether incoming describes the same logical target as
// kept: same object, same container (both-unset counts), same selector.
// Instances in different containers never merge, however alike.
func canMerge(kept, incoming *Instance) bool {
	return kept.ObjectName == incoming.ObjectName &&
		optional.Equal(kept.ContainerIdx, incoming.ContainerIdx) &&
		SelectorEquals(kept.Selector, incoming.Selector)
}

// SelectorEquals reports whether two selectors address the same data-bound
// element. A nil selector equals only another nil selector; set selectors
// compare by ID and Metadata alone, no deeper.
func SelectorEquals(x, y *Selector) bool {
	if x == nil || y == nil {
		return x == y
	}

	return x.ID == y.ID && x.Metadata == y.Metadata
}

// extendInto copies the source entries whose keys are absent from target.
// A key an earlier push already set is never overwritten. Returns target
// so callers can assign back the lazily allocated map.
func extendInto(target, source map[string]any) map[string]any {
	if source == nil {
		return target
	}

	if target == nil {
		target = make(map[string]any, len(source))
	}

	for key, value := range source {
		if _, taken := target[key]; !taken {
			target[key] = value
		}
	}

	return target
}

// Normalize coerces the host's list-or-object union into the canonical
// form: a bare instance slice is wrapped without containers, a canonical
// enumeration and nil pass through unchanged. Any other type is a caller
// bug.
func Normalize(v any) *Enumeration {
	switch e := v.(type) {
	case nil:
		return nil
	case *Enumeration:
		return e
	case []*Instance:
		return &Enumeration{Instances: e}
	default:
		panic("enumeration: Normalize accepts *Enumeration, []*Instance or nil")
	}
}

// Merge combines two enumerations, each given in either form Normalize
// accepts. Merging with nil is identity on either side. Otherwise y's
// instances are appended onto x in order, each set ContainerIdx rebased
// past x's containers, and y's containers follow x's. Merge extends x in
// place and returns it; y's instances are reused by reference, so neither
// argument may be used independently afterwards. Containers are never
// deduplicated: merging results that pushed the same container yields it
// twice.
func Merge(x, y any) *Enumeration {
	left, right := Normalize(x), Normalize(y)

	if left == nil {
		return right
	}

	if right == nil {
		return left
	}

	offset := len(left.Containers)
	for _, inst := range right.Instances {
		if inst.ContainerIdx != nil {
			inst.ContainerIdx = optional.Of(*inst.ContainerIdx + offset)
		}

		left.Instances = append(left.Instances, inst)
	}

	if len(right.Containers) > 0 {
		left.Containers = append(left.Containers, right.Containers...)
	}

	return left
}

// ContainerFor returns the container inst was stamped with. inst must
// carry a ContainerIdx valid for e; an unset or out-of-range index is a
// caller bug and panics.
func ContainerFor(e *Enumeration, inst *Instance) Container {
	return e.Containers[*inst.ContainerIdx]
}
