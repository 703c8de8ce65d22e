// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package source opens named inputs as character streams for the parser.
//
// An Opener reads files from an afero filesystem, so that callers can
// substitute an in-memory filesystem. Files written in HuJSON (JSON with
// comments and trailing commas) are converted to standard JSON before they
// are handed to the parser.
package source

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/creachadair/jdoc"
	"github.com/creachadair/jdoc/ast"
	"github.com/spf13/afero"
	"github.com/tailscale/hujson"
)

// Stdin is the name that denotes the standard input.
const Stdin = "-"

var errIsDir = errors.New("is a directory")

// An Opener opens named inputs. The zero value is ready for use and reads
// from the OS filesystem.
type Opener struct {
	// FS is the filesystem from which files are read. If nil, the OS
	// filesystem is used.
	FS afero.Fs

	// If HuJSON is true, every input is standardized as HuJSON. Otherwise
	// only files whose names end in ".hujson" or ".jwcc" are.
	HuJSON bool

	// Stdin is read for the name "-". If nil, os.Stdin is used.
	Stdin io.Reader
}

func (o Opener) fs() afero.Fs {
	if o.FS == nil {
		return afero.NewOsFs()
	}
	return o.FS
}

// Open opens the named input for reading. The caller must close the result.
// If the input cannot be opened, the error has kind jdoc.SourceUnavailable.
func (o Opener) Open(name string) (io.ReadCloser, error) {
	var rc io.ReadCloser
	if name == Stdin {
		in := o.Stdin
		if in == nil {
			in = os.Stdin
		}
		rc = io.NopCloser(in)
	} else {
		f, err := o.fs().Open(name)
		if err != nil {
			return nil, jdoc.SourceError(name, err)
		}
		if fi, err := f.Stat(); err != nil {
			f.Close()
			return nil, jdoc.SourceError(name, err)
		} else if fi.IsDir() {
			f.Close()
			return nil, jdoc.SourceError(name, &os.PathError{Op: "open", Path: name, Err: errIsDir})
		}
		rc = f
	}
	if !o.HuJSON && !IsHuJSON(name) {
		return rc, nil
	}

	// HuJSON must be read in full to be standardized.
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, jdoc.SourceError(name, err)
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, jdoc.SourceError(name, err)
	}
	return io.NopCloser(bytes.NewReader(std)), nil
}

// Parse opens and parses the named input. If setup != nil, it is called to
// configure the parser before parsing begins.
func (o Opener) Parse(name string, setup func(*jdoc.Parser)) (ast.Object, error) {
	rc, err := o.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	p := jdoc.NewParser(rc)
	if setup != nil {
		setup(p)
	}
	return p.Parse()
}

// IsHuJSON reports whether name has a file extension indicating HuJSON.
func IsHuJSON(name string) bool {
	switch filepath.Ext(name) {
	case ".hujson", ".jwcc":
		return true
	}
	return false
}
