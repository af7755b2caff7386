package resolve

import "context"

// FileSystem is the external collaborator spec.md §6 describes: existence
// checks, UTF-8 reads, JSON reads, true-case lookup, and real-path
// resolution. The resolver never touches the OS directly; it only ever
// calls through this interface, so tests can substitute an in-memory fake.
type FileSystem interface {
	Exists(ctx context.Context, absPath string) (bool, error)
	ReadUTF8(ctx context.Context, absPath string) (string, error)
	ReadJSON(ctx context.Context, absPath string, out interface{}) error

	// TrueCase returns the on-disk relative path under baseAbs with the
	// filesystem's exact casing, or (  "", false, nil ) if no such entry
	// exists regardless of casing.
	TrueCase(ctx context.Context, baseAbs, relative string) (trueRelative string, found bool, err error)

	RealPath(ctx context.Context, absPath string) (string, error)
}

// ModuleLocator is the node-style module-lookup primitive: given a package
// name and a directory to search from, it walks node_modules segments
// upward and reports the absolute path to that package's manifest, or
// found == false if no such package is installed anywhere above fromDir.
type ModuleLocator interface {
	LocateManifest(ctx context.Context, packageName, fromAbsDir string) (manifestAbsPath string, found bool, err error)
}

// packageManifest is the minimal projection of package.json the classifier
// and npm-target validator need.
type packageManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
