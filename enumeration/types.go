package enumeration

// Selector identifies which data-bound element an instance targets.
// Only ID and Metadata take part in identity; richer host selectors must
// be reduced to these two fields before reaching the builder.
type Selector struct {
	ID       string `json:"id"`
	Metadata string `json:"metadata"`
}

// Instance describes one configurable object in the enumeration.
// ContainerIdx is stamped by the builder, never by the caller; when set it
// indexes the Containers sequence of the enumeration the instance belongs to.
type Instance struct {
	ObjectName   string         `json:"objectName"`
	Selector     *Selector      `json:"selector,omitempty"`
	ContainerIdx *int           `json:"containerIdx,omitempty"`
	Properties   map[string]any `json:"properties,omitempty"`
	ValidValues  map[string]any `json:"validValues,omitempty"`
}

// Container is a visual grouping, e.g. a named section of the pane.
// The builder carries containers through untouched.
type Container struct {
	DisplayName string `json:"displayName"`
}

// Enumeration is the canonical completed result. Containers is present
// only when at least one container was pushed. A nil *Enumeration means
// "nothing was built", which is distinct from an empty instance list.
type Enumeration struct {
	Instances  []*Instance `json:"instances"`
	Containers []Container `json:"containers,omitempty"`
}
