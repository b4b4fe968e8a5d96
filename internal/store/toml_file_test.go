// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-utils/internal/logger"
	"github.com/MKhiriev/go-utils/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTOML(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func readFile(t *testing.T, p string) string {
	t.Helper()
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(data)
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestTOMLFileBackend_Load_FlatValues(t *testing.T) {
	p := writeTOML(t, `# application settings
x = 1
name = "abc"
ratio = 0.5
flag = true
data_dir = "PathObject:/tmp/data"
`)

	params, err := NewTOMLFileBackend(p, logger.Nop()).Load(context.Background())
	require.NoError(t, err)

	want := models.Parameters{
		"x":        models.Int(1),
		"name":     models.String("abc"),
		"ratio":    models.Float(0.5),
		"flag":     models.Bool(true),
		"data_dir": models.Path("/tmp/data"),
	}
	if diff := cmp.Diff(want, params); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestTOMLFileBackend_Load_RejectsTables(t *testing.T) {
	p := writeTOML(t, "x = 1\n\n[server]\nport = 80\n")

	_, err := NewTOMLFileBackend(p, logger.Nop()).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnsupportedValue)
	assert.Contains(t, err.Error(), `"server"`)
}

func TestTOMLFileBackend_Load_MissingFile(t *testing.T) {
	_, err := NewTOMLFileBackend(filepath.Join(t.TempDir(), "nope.toml"), nil).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTOMLFileBackend_Load_InvalidTOML(t *testing.T) {
	p := writeTOML(t, "x = = 1\n")

	_, err := NewTOMLFileBackend(p, nil).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding toml file")
}

func TestTOMLFileBackend_Load_CanceledContext(t *testing.T) {
	p := writeTOML(t, "x = 1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTOMLFileBackend(p, nil).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Save ──────────────────────────────────────────────────────────────────────

func TestTOMLFileBackend_Save_UnmodifiedIsByteIdentical(t *testing.T) {
	original := "# header comment\n" +
		"\n" +
		"x   =   1   # aligned on purpose\n" +
		"name='single quoted'\r\n" +
		"   # indented comment\n" +
		"ratio = 2.50\n" +
		"dir = \"PathObject:/var/lib/app\"" // no trailing newline
	p := writeTOML(t, original)

	b := NewTOMLFileBackend(p, logger.Nop())
	params, err := b.Load(context.Background())
	require.NoError(t, err)

	require.NoError(t, b.Save(context.Background(), params))
	assert.Equal(t, original, readFile(t, p))
}

func TestTOMLFileBackend_Save_RewritesChangedLinesOnly(t *testing.T) {
	p := writeTOML(t, "# keep me\nx = 1 # old\ny = \"a\"\n")

	b := NewTOMLFileBackend(p, nil)
	params, err := b.Load(context.Background())
	require.NoError(t, err)

	params["x"] = models.Int(5)
	require.NoError(t, b.Save(context.Background(), params))

	assert.Equal(t, "# keep me\nx = 5\ny = \"a\"\n", readFile(t, p))
}

func TestTOMLFileBackend_Save_AppendsNewKeys(t *testing.T) {
	p := writeTOML(t, "x = 1")

	b := NewTOMLFileBackend(p, nil)
	params, err := b.Load(context.Background())
	require.NoError(t, err)

	params["y"] = models.Int(2)
	params["a_path"] = models.Path("/srv/x")
	require.NoError(t, b.Save(context.Background(), params))

	assert.Equal(t, "x = 1\na_path = \"PathObject:/srv/x\"\ny = 2\n", readFile(t, p))

	reloaded, err := NewTOMLFileBackend(p, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Path("/srv/x"), reloaded["a_path"])
	assert.Equal(t, models.Int(2), reloaded["y"])
}

func TestTOMLFileBackend_Save_KeepsKeysMissingFromMapping(t *testing.T) {
	p := writeTOML(t, "x = 1\nobsolete = 3\n")

	b := NewTOMLFileBackend(p, nil)
	require.NoError(t, b.Save(context.Background(), models.Parameters{"x": models.Int(9)}))

	assert.Equal(t, "x = 9\nobsolete = 3\n", readFile(t, p))
}

func TestTOMLFileBackend_Save_WithoutLoadComparesLineValue(t *testing.T) {
	p := writeTOML(t, "x =    1\nname = \"n\"\n")

	b := NewTOMLFileBackend(p, nil)
	require.NoError(t, b.Save(context.Background(), models.Parameters{
		"x":    models.Int(1),
		"name": models.String("m"),
	}))

	assert.Equal(t, "x =    1\nname = \"m\"\n", readFile(t, p))
}

func TestTOMLFileBackend_Save_InsertsBeforeFirstTable(t *testing.T) {
	p := writeTOML(t, "x = 1\n\n[section]\nk = 2\n")

	b := NewTOMLFileBackend(p, nil)
	require.NoError(t, b.Save(context.Background(), models.Parameters{
		"x": models.Int(1),
		"z": models.Int(3),
	}))

	assert.Equal(t, "x = 1\n\nz = 3\n[section]\nk = 2\n", readFile(t, p))
}

func TestTOMLFileBackend_Save_CreatesMissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "new.toml")

	b := NewTOMLFileBackend(p, nil)
	require.NoError(t, b.Save(context.Background(), models.Parameters{
		"b": models.String("two"),
		"a": models.Int(1),
	}))

	assert.Equal(t, "a = 1\nb = \"two\"\n", readFile(t, p))
}

func TestTOMLFileBackend_Save_RejectsInvalidValue(t *testing.T) {
	p := writeTOML(t, "x = 1\n")

	err := NewTOMLFileBackend(p, nil).Save(context.Background(), models.Parameters{"x": {}})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnsupportedValue)
	assert.Equal(t, "x = 1\n", readFile(t, p), "file must not be touched on failure")
}

func TestTOMLFileBackend_Save_MultilineStringBodyIsNotAKey(t *testing.T) {
	original := "msg = \"\"\"\ny = 2\n[not_a_table]\n\"\"\"\n"
	p := writeTOML(t, original)

	b := NewTOMLFileBackend(p, nil)
	params, err := b.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.String("y = 2\n[not_a_table]\n"), params["msg"])

	params["y"] = models.Int(7)
	require.NoError(t, b.Save(context.Background(), params))
	assert.Equal(t, original+"y = 7\n", readFile(t, p))

	reloaded, err := NewTOMLFileBackend(p, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Parameters{
		"msg": models.String("y = 2\n[not_a_table]\n"),
		"y":   models.Int(7),
	}, reloaded)
}

func TestTOMLFileBackend_Save_RewritesMultilineValue(t *testing.T) {
	p := writeTOML(t, "note = '''\nfirst\nx = 3\n'''\nx = 1\n")

	b := NewTOMLFileBackend(p, nil)
	params, err := b.Load(context.Background())
	require.NoError(t, err)

	params["note"] = models.String("short")
	params["x"] = models.Int(2)
	require.NoError(t, b.Save(context.Background(), params))

	assert.Equal(t, "note = \"short\"\nx = 2\n", readFile(t, p))
}

func TestTOMLFileBackend_Save_AppendsWithFileLineEnding(t *testing.T) {
	p := writeTOML(t, "# windows\r\nx = 1")

	b := NewTOMLFileBackend(p, nil)
	require.NoError(t, b.Save(context.Background(), models.Parameters{
		"x": models.Int(1),
		"y": models.Int(2),
	}))

	assert.Equal(t, "# windows\r\nx = 1\r\ny = 2\r\n", readFile(t, p))
}

// ── line helpers ──────────────────────────────────────────────────────────────

func TestLineKey(t *testing.T) {
	tests := []struct {
		line string
		key  string
		ok   bool
	}{
		{"x = 1\n", "x", true},
		{"  spaced_key=2", "spaced_key", true},
		{`"quoted key" = 3`, "quoted key", true},
		{"# x = 1", "", false},
		{"[table]", "", false},
		{"\n", "", false},
		{"no equals sign", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			key, ok := lineKey(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestScanMultiline(t *testing.T) {
	tests := []struct {
		line string
		open string
		want string
	}{
		{"x = 1\n", "", ""},
		{"msg = \"\"\"\n", "", `"""`},
		{"msg = '''raw\n", "", "'''"},
		{"msg = \"\"\"one line\"\"\"\n", "", ""},
		{"s = \"has \\\" \"\"\" inside\"\n", "", ""},
		{"x = 1 # \"\"\" in a comment\n", "", ""},
		{"y = 2\n", `"""`, `"""`},
		{"end \\\"\"\"\n", `"""`, `"""`},
		{"end\"\"\"\"\"\n", `"""`, ""},
		{"'''\n", "'''", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, scanMultiline(tt.line, tt.open))
		})
	}
}

func TestEncodeTOMLLine(t *testing.T) {
	line, err := encodeTOMLLine("ratio", models.Float(1))
	require.NoError(t, err)
	assert.Equal(t, "ratio = 1.0", line)

	line, err = encodeTOMLLine("flag", models.Bool(false))
	require.NoError(t, err)
	assert.Equal(t, "flag = false", line)

	line, err = encodeTOMLLine("msg", models.String(`say "hi"`))
	require.NoError(t, err)
	assert.Equal(t, `msg = "say \"hi\""`, line)
}
