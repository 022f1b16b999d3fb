package enumeration

import (
	"slices"

	"object-enumerator/internal/optional"
)

//go:generate go tool stringer -type=MergeModeEnum -output=mergemode_string.go

// MergeModeEnum selects how PushInstance treats an instance that matches
// one already accumulated.
type MergeModeEnum int

const (
	// MergeSameTarget folds the incoming instance into the first
	// accumulated one describing the same logical target.
	MergeSameTarget MergeModeEnum = iota
	// AppendAlways skips the merge scan and appends unconditionally.
	AppendAlways

	// MergeModeTotal is a constant that represents the total number of modes defined
	MergeModeTotal = int(iota)
)

// Builder accumulates instances and containers for one enumeration pass.
// The zero value is ready to use. Mutators return the builder itself so
// calls can be chained. A builder belongs to a single caller: build, call
// Complete once, discard.
type Builder struct {
	instances  []*Instance
	containers []Container
	cursor     int // 1-based index into containers; 0 means no current container
}

// PushInstance adds inst to the enumeration. If a container is current,
// inst is stamped with its index first, even when it folds away right
// after. In MergeSameTarget mode the accumulated instances are scanned in
// insertion order and the first one describing the same logical target
// absorbs inst's Properties and ValidValues; entries earlier pushes
// already set are kept.
func (b *Builder) PushInstance(inst *Instance, mode MergeModeEnum) *Builder {
	if b.cursor != 0 {
		inst.ContainerIdx = optional.Of(b.cursor - 1)
	}

	if mode == MergeSameTarget {
		at := slices.IndexFunc(b.instances, func(kept *Instance) bool {
			return canMerge(kept, inst)
		})
		if at >= 0 {
			kept := b.instances[at]
			kept.Properties = extendInto(kept.Properties, inst.Properties)
			kept.ValidValues = extendInto(kept.ValidValues, inst.ValidValues)

			return b
		}
	}

	b.instances = append(b.instances, inst)

	return b
}

// PushContainer appends c and makes it the current container: every
// instance pushed before the next PopContainer is stamped with its index.
func (b *Builder) PushContainer(c Container) *Builder {
	b.containers = append(b.containers, c)
	b.cursor = len(b.containers)

	return b
}

// PopContainer returns to top level. Containers do not nest: pop always
// clears the cursor, it does not restore an earlier container. Callers
// needing nested grouping must save and restore around PushContainer
// themselves.
func (b *Builder) PopContainer() *Builder {
	b.cursor = 0

	return b
}

// Complete returns the accumulated enumeration, or nil when no instance
// was ever pushed. Ownership of the slices transfers to the result; the
// builder must not be reused afterwards.
func (b *Builder) Complete() *Enumeration {
	if b.instances == nil {
		return nil
	}

	e := &Enumeration{Instances: b.instances}
	if len(b.containers) > 0 {
		e.Containers = b.containers
	}

	return e
}
