// Package fsadapter is the default, OS-backed implementation of
// resolve.FileSystem. It is the resolver's adapter for the filesystem
// external collaborator spec.md §6 describes; tests substitute an
// in-memory fake instead of importing this package.
package fsadapter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
)

// FS is the OS-backed resolve.FileSystem.
type FS struct{}

// New returns the default filesystem adapter.
func New() FS { return FS{} }

func (FS) Exists(_ context.Context, absPath string) (bool, error) {
	_, err := os.Stat(filepath.FromSlash(absPath))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "stat %s", absPath)
}

func (FS) ReadUTF8(_ context.Context, absPath string) (string, error) {
	data, err := os.ReadFile(filepath.FromSlash(absPath))
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", absPath)
	}
	return string(data), nil
}

// ReadJSON reads absPath as JSONC (tolerating comments and trailing
// commas, the way bennypowers-design-tokens-language-server's
// readPackageJsonFile reads package.json) and unmarshals it into out.
func (FS) ReadJSON(_ context.Context, absPath string, out interface{}) error {
	data, err := os.ReadFile(filepath.FromSlash(absPath))
	if err != nil {
		return errors.Wrapf(err, "reading %s", absPath)
	}
	data = jsonc.ToJSON(data)
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "parsing %s", absPath)
	}
	return nil
}

// TrueCase walks relative segment by segment under baseAbs, using
// godirwalk.ReadDirnames at each level to find the on-disk entry whose
// name matches the segment case-insensitively, returning the path rebuilt
// with the filesystem's exact casing.
func (FS) TrueCase(_ context.Context, baseAbs, relative string) (string, bool, error) {
	if relative == "" {
		return "", true, nil
	}

	segments := strings.Split(relative, "/")
	currentAbs := filepath.FromSlash(baseAbs)
	trueSegments := make([]string, 0, len(segments))

	for _, seg := range segments {
		names, err := godirwalk.ReadDirnames(currentAbs, nil)
		if err != nil {
			if os.IsNotExist(err) {
				return "", false, nil
			}
			return "", false, errors.Wrapf(err, "listing %s", currentAbs)
		}

		matched := ""
		for _, name := range names {
			if strings.EqualFold(name, seg) {
				matched = name
				break
			}
		}
		if matched == "" {
			return "", false, nil
		}

		trueSegments = append(trueSegments, matched)
		currentAbs = filepath.Join(currentAbs, matched)
	}

	return strings.Join(trueSegments, "/"), true, nil
}

func (FS) RealPath(_ context.Context, absPath string) (string, error) {
	real, err := filepath.EvalSymlinks(filepath.FromSlash(absPath))
	if err != nil {
		return "", errors.Wrapf(err, "resolving real path of %s", absPath)
	}
	return filepath.ToSlash(real), nil
}
