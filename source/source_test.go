// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package source_test

import (
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/creachadair/jdoc"
	"github.com/creachadair/jdoc/source"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFS(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	files := map[string]string{
		"/data/plain.json":     `{"name":"Alice","age":30}`,
		"/data/config.hujson":  "// comment\n{\"a\": [1, 2,], /* note */ \"b\": true,}\n",
		"/data/broken.hujson":  "{\"a\": /* unterminated",
		"/data/commented.json": "{\"a\": 1 // not allowed here\n}",
	}
	for name, text := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(text), 0o644))
	}
	return fsys
}

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestOpen(t *testing.T) {
	o := source.Opener{FS: newTestFS(t)}

	t.Run("Plain", func(t *testing.T) {
		rc, err := o.Open("/data/plain.json")
		require.NoError(t, err)
		assert.Equal(t, `{"name":"Alice","age":30}`, readAll(t, rc))
	})

	t.Run("HuJSON", func(t *testing.T) {
		rc, err := o.Open("/data/config.hujson")
		require.NoError(t, err)
		got := readAll(t, rc)
		assert.NotContains(t, got, "comment")
		assert.NotContains(t, got, "note")

		obj, err := jdoc.Parse(strings.NewReader(got))
		require.NoError(t, err)
		assert.Equal(t, `{"a":[1,2],"b":true}`, obj.JSON())
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := o.Open("/data/nonesuch.json")
		require.Error(t, err)
		assert.ErrorIs(t, err, jdoc.SourceUnavailable)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := o.Open("/data")
		assert.ErrorIs(t, err, jdoc.SourceUnavailable)
	})

	t.Run("BadHuJSON", func(t *testing.T) {
		_, err := o.Open("/data/broken.hujson")
		assert.ErrorIs(t, err, jdoc.SourceUnavailable)
	})

	t.Run("Stdin", func(t *testing.T) {
		o := source.Opener{Stdin: strings.NewReader(`{"x":null}`)}
		rc, err := o.Open(source.Stdin)
		require.NoError(t, err)
		assert.Equal(t, `{"x":null}`, readAll(t, rc))
	})
}

func TestParse(t *testing.T) {
	fsys := newTestFS(t)

	t.Run("Plain", func(t *testing.T) {
		obj, err := source.Opener{FS: fsys}.Parse("/data/plain.json", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "age"}, obj.Keys())
	})

	t.Run("CommentsRejected", func(t *testing.T) {
		_, err := source.Opener{FS: fsys}.Parse("/data/commented.json", nil)
		assert.ErrorIs(t, err, jdoc.UnexpectedCharacter)
	})

	t.Run("ForceHuJSON", func(t *testing.T) {
		obj, err := source.Opener{FS: fsys, HuJSON: true}.Parse("/data/commented.json", nil)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, obj.JSON())
	})

	t.Run("Setup", func(t *testing.T) {
		o := source.Opener{Stdin: strings.NewReader(`{"a":{"b":{}}}`)}
		_, err := o.Parse(source.Stdin, func(p *jdoc.Parser) { p.SetMaxDepth(2) })
		assert.ErrorIs(t, err, jdoc.DepthExceeded)
	})

	t.Run("Missing", func(t *testing.T) {
		obj, err := source.Opener{FS: fsys}.Parse("/nonesuch.json", nil)
		assert.Nil(t, obj)
		var perr *jdoc.ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, jdoc.SourceUnavailable, perr.Kind)
	})
}

func TestIsHuJSON(t *testing.T) {
	assert.True(t, source.IsHuJSON("x.hujson"))
	assert.True(t, source.IsHuJSON("dir/x.jwcc"))
	assert.False(t, source.IsHuJSON("x.json"))
	assert.False(t, source.IsHuJSON(source.Stdin))
}
