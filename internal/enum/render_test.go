package enum

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	got, err := Render(DefaultName, []Entry{
		{Name: "adlog_time", ID: 1},
		{Name: "key_5_list_value", ID: 42},
	})
	require.NoError(t, err)

	want := "enum BsFieldEnum {\n" +
		"    adlog_time = 1,\n" +
		"    key_5_list_value = 42,\n" +
		"}"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_NoEntries(t *testing.T) {
	got, err := Render("Empty", nil)
	require.NoError(t, err)
	assert.Equal(t, "enum Empty {\n}", string(got))
}

func TestRender_InvalidName(t *testing.T) {
	for _, name := range []string{"", "1Enum", "Bs Field", "a-b"} {
		_, err := Render(name, nil)
		assert.Error(t, err, name)
	}
}
