package tourpipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourfame/tourpipe"
)

func TestRepairJSON(t *testing.T) {
	t.Parallel()

	t.Run("parses valid JSON directly", func(t *testing.T) {
		t.Parallel()

		v := tourpipe.RepairJSON(`[{"title": "Kapadokya Turu", "days": 3}]`)
		require.NotNil(t, v)

		arr, ok := v.([]any)
		require.True(t, ok)
		require.Len(t, arr, 1)

		obj := arr[0].(map[string]any)
		assert.Equal(t, "Kapadokya Turu", obj["title"])
		assert.Equal(t, float64(3), obj["days"])
	})

	t.Run("extracts JSON wrapped in prose", func(t *testing.T) {
		t.Parallel()

		raw := "Sure! Here are the tours you asked for:\n" +
			`[{"title": "Ege Turu"}]` + "\nLet me know if you need anything else."
		v := tourpipe.RepairJSON(raw)
		require.NotNil(t, v)

		arr := v.([]any)
		require.Len(t, arr, 1)
		assert.Equal(t, "Ege Turu", arr[0].(map[string]any)["title"])
	})

	t.Run("appends missing closing brackets", func(t *testing.T) {
		t.Parallel()

		v := tourpipe.RepairJSON(`[{"title": "Karadeniz Turu", "days": 5`)
		require.NotNil(t, v)

		arr := v.([]any)
		require.Len(t, arr, 1)
		assert.Equal(t, "Karadeniz Turu", arr[0].(map[string]any)["title"])
	})

	t.Run("strips illegal trailing commas", func(t *testing.T) {
		t.Parallel()

		v := tourpipe.RepairJSON(`[{"title": "GAP Turu", "days": 4,},]`)
		require.NotNil(t, v)

		arr := v.([]any)
		require.Len(t, arr, 1)
		assert.Equal(t, "GAP Turu", arr[0].(map[string]any)["title"])
	})

	t.Run("inserts missing commas between adjacent objects", func(t *testing.T) {
		t.Parallel()

		raw := "[{\"title\": \"A\"}\n{\"title\": \"B\"}]"
		v := tourpipe.RepairJSON(raw)
		require.NotNil(t, v)

		arr := v.([]any)
		require.Len(t, arr, 2)
	})

	t.Run("closes strings left open at a newline", func(t *testing.T) {
		t.Parallel()

		raw := "[{\"title\": \"Truncated tour\n}]"
		v := tourpipe.RepairJSON(raw)
		require.NotNil(t, v)
	})

	t.Run("strips control characters", func(t *testing.T) {
		t.Parallel()

		v := tourpipe.RepairJSON("{\"title\": \"Bodrum\x01 Turu\"}")
		require.NotNil(t, v)

		obj := v.(map[string]any)
		assert.Equal(t, "Bodrum Turu", obj["title"])
	})

	t.Run("recovers titles from unparseable output", func(t *testing.T) {
		t.Parallel()

		raw := "Here is the data: [{title: 'Tour', days: 3,}]"
		v := tourpipe.RepairJSON(raw)
		require.NotNil(t, v)

		arr, ok := v.([]any)
		require.True(t, ok)
		require.Len(t, arr, 1)
		assert.Equal(t, "Tour", arr[0].(map[string]any)["title"])
	})

	t.Run("returns nil when nothing is recoverable", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, tourpipe.RepairJSON("no structured data here"))
		assert.Nil(t, tourpipe.RepairJSON(""))
	})

	t.Run("rejects bare scalars", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, tourpipe.RepairJSON(`42`))
	})
}
