package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImageRefAcceptsStringAndDescriptor(t *testing.T) {
	t.Parallel()

	var refs []ImageRef
	payload := `["/uploads/a.jpg", {"rawFile": {"path": "b.png"}}]`
	require.NoError(t, json.Unmarshal([]byte(payload), &refs))

	require.Equal(t, []string{"/uploads/a.jpg", "/uploads/b.png"}, ImagePaths(refs))
}

func TestImageRefRejectsNumbers(t *testing.T) {
	t.Parallel()

	var ref ImageRef
	require.Error(t, json.Unmarshal([]byte(`42`), &ref))
}

func TestImagePathsNilPassthrough(t *testing.T) {
	t.Parallel()

	require.Nil(t, ImagePaths(nil))
}

func TestIDListMixedElements(t *testing.T) {
	t.Parallel()

	var ids IDList
	require.NoError(t, json.Unmarshal([]byte(`[1, "2", " 3 "]`), &ids))
	require.Equal(t, []uint{1, 2, 3}, ids.Uints())

	require.Error(t, json.Unmarshal([]byte(`["abc"]`), &ids))
	require.Error(t, json.Unmarshal([]byte(`[-1]`), &ids))
}

func TestFlexFloat(t *testing.T) {
	t.Parallel()

	var f FlexFloat
	require.NoError(t, json.Unmarshal([]byte(`19.5`), &f))
	require.Equal(t, 19.5, f.Float64())

	require.NoError(t, json.Unmarshal([]byte(`"250000"`), &f))
	require.Equal(t, 250000.0, f.Float64())

	require.Error(t, json.Unmarshal([]byte(`"dear"`), &f))
}

func TestFlexInt(t *testing.T) {
	t.Parallel()

	var n FlexInt
	require.NoError(t, json.Unmarshal([]byte(`"100000"`), &n))
	require.Equal(t, 100000, n.Int())

	require.NoError(t, json.Unmarshal([]byte(`7`), &n))
	require.Equal(t, 7, n.Int())
}
