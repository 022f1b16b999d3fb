package enumeration

import "slices"

// InstanceCount returns the number of instances; zero for "no result".
func (e *Enumeration) InstanceCount() int {
	if e == nil {
		return 0
	}

	return len(e.Instances)
}

// ContainerCount returns the number of containers; zero for "no result".
func (e *Enumeration) ContainerCount() int {
	if e == nil {
		return 0
	}

	return len(e.Containers)
}

// Find returns the first instance, in add order, for the given object
// name and selector, or nil if the enumeration holds none.
func (e *Enumeration) Find(objectName string, sel *Selector) *Instance {
	if e == nil {
		return nil
	}

	at := slices.IndexFunc(e.Instances, func(inst *Instance) bool {
		return inst.ObjectName == objectName && SelectorEquals(inst.Selector, sel)
	})
	if at < 0 {
		return nil
	}

	return e.Instances[at]
}
