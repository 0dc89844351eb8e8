package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// ResourceLoader locates a configuration resource by name. Open returns
// an error wrapping ErrResourceNotFound when it has no such resource,
// and a human readable location of the resource it did open.
type ResourceLoader interface {
	Open(name string) (rc io.ReadCloser, location string, err error)
}

// FSLoader loads resources from an fs.FS
type FSLoader struct {
	FS fs.FS
	// Label prefixes the reported location (default: "fs")
	Label string
}

// Open implements ResourceLoader
func (l FSLoader) Open(name string) (io.ReadCloser, string, error) {
	label := l.Label
	if label == "" {
		label = "fs"
	}
	location := label + ":" + name

	if l.FS == nil {
		return nil, location, fmt.Errorf("%w: %s", ErrResourceNotFound, location)
	}

	name = path.Clean(filepath.ToSlash(name))
	if !fs.ValidPath(name) {
		return nil, location, fmt.Errorf("%w: %s", ErrResourceNotFound, location)
	}
	f, err := l.FS.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, location, fmt.Errorf("%w: %s", ErrResourceNotFound, location)
		}
		return nil, location, fmt.Errorf("%w: %s", ErrResourceUnreadable, err.Error())
	}
	return f, location, nil
}

// DirLoader loads resources from a list of directories, first match wins
type DirLoader []string

// Open implements ResourceLoader
func (l DirLoader) Open(name string) (io.ReadCloser, string, error) {
	for _, dir := range l {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, name)
		f, err := os.Open(p)
		if err == nil {
			return f, p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, p, fmt.Errorf("%w: %s", ErrResourceUnreadable, err.Error())
		}
	}
	return nil, "", fmt.Errorf("%w: %s", ErrResourceNotFound, name)
}

// SystemLoader is the fallback loader: the working directory, then the
// directory holding the running executable.
func SystemLoader() ResourceLoader {
	var dirs DirLoader
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	return dirs
}

// ChainLoader tries each loader in order and stops at the first one that
// does not report ErrResourceNotFound.
type ChainLoader []ResourceLoader

// Open implements ResourceLoader
func (c ChainLoader) Open(name string) (io.ReadCloser, string, error) {
	for _, l := range c {
		if l == nil {
			continue
		}
		rc, location, err := l.Open(name)
		if errors.Is(err, ErrResourceNotFound) {
			continue
		}
		return rc, location, err
	}
	return nil, "", fmt.Errorf("%w: %s", ErrResourceNotFound, name)
}
