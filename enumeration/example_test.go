package enumeration_test

import (
	"fmt"

	"object-enumerator/enumeration"
)

func ExampleBuilder() {
	var b enumeration.Builder

	b.PushContainer(enumeration.Container{DisplayName: "General"}).
		PushInstance(&enumeration.Instance{ObjectName: "legend"}, enumeration.MergeSameTarget).
		PopContainer().
		PushInstance(&enumeration.Instance{ObjectName: "title"}, enumeration.MergeSameTarget)

	result := b.Complete()
	fmt.Println("instances:", result.InstanceCount())
	fmt.Println("containers:", result.ContainerCount())
	fmt.Println("legend section:", enumeration.ContainerFor(result, result.Find("legend", nil)).DisplayName)

	// Output:
	// instances: 2
	// containers: 1
	// legend section: General
}

func ExampleMerge() {
	sectioned := (&enumeration.Builder{}).
		PushContainer(enumeration.Container{DisplayName: "Axes"}).
		PushInstance(&enumeration.Instance{ObjectName: "xAxis"}, enumeration.MergeSameTarget).
		Complete()

	merged := enumeration.Merge(sectioned, []*enumeration.Instance{{ObjectName: "title"}})
	fmt.Println("instances:", merged.InstanceCount())
	fmt.Println("containers:", merged.ContainerCount())

	// Output:
	// instances: 2
	// containers: 1
}
