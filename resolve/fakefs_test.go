package resolve

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
)

// fakeFS is an in-memory resolve.FileSystem fixture, standing in for the
// real OS the way the teacher's gps tests stand a fixture in for a real
// source manager (see solve_test.go's bimodal fixtures).
type fakeFS struct {
	// files maps an absolute, forward-slash, TRUE-case path to its content.
	files map[string]string
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: make(map[string]string)}
}

func (f *fakeFS) withFile(absPath, content string) *fakeFS {
	f.files[absPath] = content
	return f
}

func (f *fakeFS) withJSON(absPath string, v interface{}) *fakeFS {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return f.withFile(absPath, string(b))
}

func (f *fakeFS) Exists(_ context.Context, absPath string) (bool, error) {
	if _, ok := f.files[absPath]; ok {
		return true, nil
	}
	prefix := absPath + "/"
	for p := range f.files {
		if strings.HasPrefix(p, prefix) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFS) ReadUTF8(_ context.Context, absPath string) (string, error) {
	content, ok := f.files[absPath]
	if !ok {
		return "", newErr(ProjectFileMissing, "no such file: %s", absPath)
	}
	return content, nil
}

func (f *fakeFS) ReadJSON(_ context.Context, absPath string, out interface{}) error {
	content, ok := f.files[absPath]
	if !ok {
		return newErr(ProjectFileMissing, "no such file: %s", absPath)
	}
	return json.Unmarshal([]byte(content), out)
}

func (f *fakeFS) children(dirAbs string) []string {
	prefix := dirAbs + "/"
	seen := map[string]bool{}
	for p := range f.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := p[len(prefix):]
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			rest = rest[:i]
		}
		seen[rest] = true
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (f *fakeFS) TrueCase(_ context.Context, baseAbs, relative string) (string, bool, error) {
	if relative == "" {
		return "", true, nil
	}
	segs := strings.Split(relative, "/")
	cur := baseAbs
	trueSegs := make([]string, 0, len(segs))
	for _, seg := range segs {
		matched := ""
		for _, name := range f.children(cur) {
			if strings.EqualFold(name, seg) {
				matched = name
				break
			}
		}
		if matched == "" {
			return "", false, nil
		}
		trueSegs = append(trueSegs, matched)
		cur = cur + "/" + matched
	}
	return strings.Join(trueSegs, "/"), true, nil
}

func (f *fakeFS) RealPath(_ context.Context, absPath string) (string, error) {
	return absPath, nil
}

// fakeLocator is an in-memory resolve.ModuleLocator fixture: a direct map
// from packageName to a manifest path.
type fakeLocator struct {
	// manifests maps packageName to its manifest absolute path. Lookups
	// ignore fromAbsDir; tests that need to distinguish origins construct
	// separate fixtures.
	manifests map[string]string
}

func newFakeLocator() *fakeLocator {
	return &fakeLocator{manifests: make(map[string]string)}
}

func (l *fakeLocator) withPackage(name, manifestAbsPath string) *fakeLocator {
	l.manifests[name] = manifestAbsPath
	return l
}

func (l *fakeLocator) LocateManifest(_ context.Context, packageName, _ string) (string, bool, error) {
	p, ok := l.manifests[packageName]
	return p, ok, nil
}
