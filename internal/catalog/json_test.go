package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_RoundTripsOrderAndAppendsBSFields(t *testing.T) {
	c, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	c.Features[0].BSFields = []string{"key:5.list_value"}
	c.Features[1].BSFields = []string{}

	out, err := Encode(c)
	require.NoError(t, err)

	want := `{
    "photo_ctr": {
        "adlog_fields": [
            "adlog.user_info.find(uid)->second.list_value(0)",
            "adlog.item(pos).name_value"
        ],
        "int_var": {
            "zeta": 9,
            "uid": 5,
            "alpha": 1
        },
        "common_info_var": {},
        "owner": "ranking",
        "weights": [
            1,
            2
        ],
        "bs_fields": [
            "key:5.list_value"
        ]
    },
    "author_cvr": {
        "common_info_var": {
            "it": 3
        },
        "adlog_fields": [],
        "int_var": {},
        "bs_fields": []
    }
}`
	assert.Equal(t, want, string(out))
}

func TestEncode_KeepsExistingBSFieldsPosition(t *testing.T) {
	c, err := Parse([]byte(`{"f": {"bs_fields": ["stale"], "adlog_fields": ["a.b"], "int_var": {}, "common_info_var": {}}}`))
	require.NoError(t, err)

	c.Features[0].BSFields = []string{"a.b"}

	out, err := Encode(c)
	require.NoError(t, err)
	assert.Equal(t, `{
    "f": {
        "bs_fields": [
            "a.b"
        ],
        "adlog_fields": [
            "a.b"
        ],
        "int_var": {},
        "common_info_var": {}
    }
}`, string(out))
}

func TestEncode_NoBSFieldsBeforePipeline(t *testing.T) {
	c, err := Parse([]byte(`{"f": {"adlog_fields": [], "int_var": {}, "common_info_var": {}}}`))
	require.NoError(t, err)

	out, err := Encode(c)
	require.NoError(t, err)
	assert.NotContains(t, string(out), KeyBSFields)
}

func TestEncode_DoesNotEscapeHTMLOrUnicode(t *testing.T) {
	out, err := Encode([]string{"a->b", "ключ"})
	require.NoError(t, err)
	assert.Equal(t, "[\n    \"a->b\",\n    \"ключ\"\n]", string(out))
}

func TestEncode_KeepsUninterpretedValuesVerbatim(t *testing.T) {
	c, err := Parse([]byte(`{"f": {
    "adlog_fields": [],
    "meta": {"z": 1.0, "a": 2, "big": 12345678901234567890, "nested": {"y": 1e3, "x": null}},
    "int_var": {},
    "common_info_var": {},
    "note": "😀 a\/b"
}}`))
	require.NoError(t, err)

	c.Features[0].BSFields = []string{}

	out, err := Encode(c)
	require.NoError(t, err)
	assert.Equal(t, `{
    "f": {
        "adlog_fields": [],
        "meta": {
            "z": 1.0,
            "a": 2,
            "big": 12345678901234567890,
            "nested": {
                "y": 1e3,
                "x": null
            }
        },
        "int_var": {},
        "common_info_var": {},
        "note": "😀 a\/b",
        "bs_fields": []
    }
}`, string(out))
}
