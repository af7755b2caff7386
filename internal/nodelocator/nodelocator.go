// Package nodelocator is the default implementation of
// resolve.ModuleLocator: the node-style module-lookup primitive spec.md
// §6 describes as an external collaborator. It walks upward from a
// directory through node_modules segments, the same upward-search shape
// golang-dep's Ctx.findProjectRootFromWD (context.go) uses to locate a
// project root from the working directory, adapted here to locate an
// installed package's manifest instead.
package nodelocator

import (
	"context"
	"os"
	"path/filepath"
)

// Locator is the OS-backed resolve.ModuleLocator.
type Locator struct{}

// New returns the default node-style module locator.
func New() Locator { return Locator{} }

// LocateManifest resolves "<packageName>/package.json" by walking upward
// from fromAbsDir through every node_modules directory, the way Node's own
// module resolution walks ancestor node_modules directories.
func (Locator) LocateManifest(_ context.Context, packageName, fromAbsDir string) (string, bool, error) {
	dir := filepath.FromSlash(fromAbsDir)

	for {
		candidate := filepath.Join(dir, "node_modules", filepath.FromSlash(packageName), "package.json")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return filepath.ToSlash(candidate), true, nil
		} else if err != nil && !os.IsNotExist(err) {
			return "", false, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
