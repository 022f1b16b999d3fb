package enumeration_test

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"object-enumerator/enumeration"
)

// The golden file pins the exact JSON shape handed to the host. After an
// intentional contract change, regenerate with:
//
//	go test ./enumeration -run TestCompletedEnumerationShape -update
func TestCompletedEnumerationShape(t *testing.T) {
	var b enumeration.Builder
	b.PushContainer(enumeration.Container{DisplayName: "General"}).
		PushInstance(&enumeration.Instance{
			ObjectName: "dataPoint",
			Selector:   &enumeration.Selector{ID: "series-1", Metadata: "measure"},
			Properties: map[string]any{"fill": "#01B8AA"},
		}, enumeration.MergeSameTarget).
		PopContainer().
		PushInstance(&enumeration.Instance{
			ObjectName: "legend",
			Properties: map[string]any{"show": true},
		}, enumeration.MergeSameTarget)

	result := b.Complete()
	require.NotNil(t, result)

	data, err := json.MarshalIndent(result, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t, goldie.WithNameSuffix(".golden"))
	g.Assert(t, "completed_enumeration", append(data, '\n'))
}
