package gen

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bsfield-generator/internal/catalog"
	"bsfield-generator/internal/diagnostic"
	"bsfield-generator/internal/registry"
)

const scenarioCatalog = `{
    "user_list": {
        "adlog_fields": ["find(uid)->second.list_value(0)"],
        "int_var": {"uid": 5},
        "common_info_var": {}
    },
    "attr_map": {
        "adlog_fields": ["(*it.begin()).map_info"],
        "int_var": {},
        "common_info_var": {"it": 3}
    },
    "item_name": {
        "adlog_fields": ["adlog.item(pos).name_value"],
        "int_var": {},
        "common_info_var": {}
    }
}`

const scenarioRegistry = `{"mapping": {"key:5.list_value": ["user_list", 42], "key:3.key": ["attr_map", "7"]}}`

func testConfig(dir string) GeneratorConfig {
	return GeneratorConfig{
		EnumName:      "BsFieldEnum",
		AnnotatedPath: filepath.Join(dir, "adlog_fields_bs.json"),
		GlobalPath:    filepath.Join(dir, "all_bs_fields.json"),
		EnumPath:      filepath.Join(dir, "bs_fields_enum.h"),
	}
}

func generate(t *testing.T, catalogJSON, registryJSON string) *Result {
	t.Helper()

	c, err := catalog.Parse([]byte(catalogJSON))
	require.NoError(t, err)

	reg, err := registry.Parse([]byte(registryJSON))
	require.NoError(t, err)

	res, err := NewGenerator(testConfig(t.TempDir()), slog.New(slog.NewTextHandler(io.Discard, nil))).Generate(c, reg)
	require.NoError(t, err)

	return res
}

func TestGenerate_Scenarios(t *testing.T) {
	res := generate(t, scenarioCatalog, scenarioRegistry)

	assert.Equal(t, []string{"key:5.list_value", "key:3.key", "key:3.value"}, res.Global)

	require.Len(t, res.Files, 3)

	wantEnum := "enum BsFieldEnum {\n" +
		"    key_3_key = 7,\n" +
		"    key_5_list_value = 42,\n" +
		"}"
	if diff := cmp.Diff(wantEnum, string(res.Files[2].Content)); diff != "" {
		t.Errorf("enum mismatch (-want +got):\n%s", diff)
	}

	wantGlobal := `[
    "key:5.list_value",
    "key:3.key",
    "key:3.value"
]`
	assert.Equal(t, wantGlobal, string(res.Files[1].Content))

	annotated := string(res.Files[0].Content)
	assert.Contains(t, annotated, `"find(uid)->second.list_value(0)"`)
	assert.Contains(t, annotated, "\"bs_fields\": [\n            \"key:5.list_value\"\n        ]")
	assert.Contains(t, annotated, "\"item_name\": {\n        \"adlog_fields\": [\n            \"adlog.item(pos).name_value\"\n        ],\n        \"int_var\": {},\n        \"common_info_var\": {},\n        \"bs_fields\": []\n    }")

	// key:3.value is in the global list but has no id.
	assert.Equal(t, []string{"key:3.value"}, res.Assignment.Missing)
	assert.NotContains(t, string(res.Files[2].Content), "key_3_value")
	assert.Len(t, res.Diagnostics.ByCode(diagnostic.CodeMissingID), 1)
	assert.Len(t, res.Diagnostics.ByCode(diagnostic.CodeEmptyFeature), 1)
	assert.False(t, res.Diagnostics.HasErrors(), spew.Sdump(res.Diagnostics))
}

func TestGenerate_IsIdempotent(t *testing.T) {
	first := generate(t, scenarioCatalog, scenarioRegistry)

	for i := 0; i < 3; i++ {
		next := generate(t, scenarioCatalog, scenarioRegistry)
		require.Len(t, next.Files, len(first.Files))

		for i := range first.Files {
			assert.Equal(t, string(first.Files[i].Content), string(next.Files[i].Content))
		}
	}
}

func TestGenerate_Properties(t *testing.T) {
	catalogJSON := `{
    "a": {
        "adlog_fields": [
            "adlog.user_info().find(uid)->second.list_value(3)",
            "adlog.user_info().common_info_attr(i).map_int64_value()",
            "adlog.user_info().common_info_attr(i).int_value()",
            "adlog.item(pos).ad_dsp_info().creative().id()",
            "adlog.item(pos).has_ad_dsp_info()",
            "adlog.item(pos).ad_dsp_info().photo_info().empty()",
            "(*it.begin()).bool_value"
        ],
        "int_var": {"uid": 11},
        "common_info_var": {"attr": 21}
    },
    "b": {
        "adlog_fields": [
            "adlog.item(pos).ad_dsp_info().creative().id()",
            "adlog.time()",
            "adlog.item.ad_dsp_info.creative.id"
        ],
        "int_var": {},
        "common_info_var": {}
    }
}`
	registryJSON := `{"mapping": {
    "adlog.time": ["b", 1],
    "adlog.item.ad_dsp_info.creative.id": ["b", 1],
    "adlog.user_info.key:11.list_value": ["a", 9],
    "adlog.user_info.common_info_attr.key:21.value": ["a", 4]
}}`

	res := generate(t, catalogJSON, registryJSON)

	seen := map[string]bool{}
	for _, p := range res.Global {
		assert.False(t, seen[p], "duplicate %s", p)
		seen[p] = true

		assert.NotContains(t, p, "(")
		assert.Regexp(t, regexp.MustCompile(`^[a-zA-Z0-9_:.]+$`), p)
	}

	assert.ElementsMatch(t, []string{
		"adlog.user_info.key:11.list_value",
		"adlog.user_info.common_info_attr.key:21.key",
		"adlog.user_info.common_info_attr.key:21.value",
		"adlog.user_info.common_info_attr.key:21",
		"adlog.item.ad_dsp_info.creative.id",
		"adlog.time",
	}, res.Global)

	// ids never decrease in emission order
	lines := strings.Split(string(res.Files[2].Content), "\n")
	prev := int64(-1)

	for _, line := range lines[1 : len(lines)-1] {
		_, value, ok := strings.Cut(strings.TrimSuffix(line, ","), " = ")
		require.True(t, ok, line)

		id, err := strconv.ParseInt(value, 10, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, id, prev)
		prev = id
	}

	assert.Equal(t, []string{
		"enum BsFieldEnum {",
		"    adlog_item_ad_dsp_info_creative_id = 1,",
		"    adlog_time = 1,",
		"    adlog_user_info_common_info_attr_key_21_value = 4,",
		"    adlog_user_info_key_11_list_value = 9,",
		"}",
	}, lines)
}

func TestGenerate_CollisionIsReportedNotEmittedTwice(t *testing.T) {
	catalogJSON := `{"f": {"adlog_fields": ["adlog.a.b", "adlog.a:b"], "int_var": {}, "common_info_var": {}}}`
	registryJSON := `{"mapping": {"adlog.a.b": ["f", 2], "adlog.a:b": ["f", 1]}}`

	res := generate(t, catalogJSON, registryJSON)

	require.True(t, res.Diagnostics.HasErrors())
	assert.Equal(t, "enum BsFieldEnum {\n    adlog_a_b = 1,\n}", string(res.Files[2].Content))
	require.Len(t, res.Assignment.Collisions, 1)
	assert.Equal(t, "adlog.a.b", res.Assignment.Collisions[0].Path)
}

func TestGenerate_InvalidEnumName(t *testing.T) {
	c, err := catalog.Parse([]byte(scenarioCatalog))
	require.NoError(t, err)

	cfg := testConfig(t.TempDir())
	cfg.EnumName = "not valid"

	_, err = NewGenerator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).Generate(c, registry.New(nil))
	require.Error(t, err)
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	files := []GeneratedFile{
		{Path: filepath.Join(dir, "a.json"), Content: []byte("[]")},
		{Path: filepath.Join(dir, "b.h"), Content: []byte("enum E {\n}")},
	}

	require.NoError(t, WriteFiles(files))

	for _, f := range files {
		got, err := os.ReadFile(f.Path)
		require.NoError(t, err)
		assert.Equal(t, f.Content, got)

		info, err := os.Stat(f.Path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())
	}

	// Overwrite in place, leaving no temp files behind.
	require.NoError(t, WriteFiles([]GeneratedFile{{Path: files[0].Path, Content: []byte(`["x"]`)}}))

	got, err := os.ReadFile(files[0].Path)
	require.NoError(t, err)
	assert.Equal(t, `["x"]`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
