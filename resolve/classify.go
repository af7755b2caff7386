package resolve

import "strings"

type manifestClass int

const (
	classProject manifestClass = iota
	classMonorepoSibling
	classInstalled
)

// classifyManifest decides whether a located package.json belongs to the
// project, a monorepo sibling outside the project root, or an installed
// node_modules package, per spec.md §4.E. rootAbs is the directory
// containing the manifest (forward-slash, absolute); projectRoot is the
// project's own absolute root.
func classifyManifest(rootAbs, projectRoot string) manifestClass {
	if containsNodeModulesSegment(rootAbs) {
		return classInstalled
	}
	if isUnderRoot(rootAbs, projectRoot) {
		return classProject
	}
	return classMonorepoSibling
}

func containsNodeModulesSegment(absPath string) bool {
	for _, seg := range strings.Split(absPath, "/") {
		if seg == "node_modules" {
			return true
		}
	}
	return false
}

// isUnderRoot reports whether path is root itself or a descendant of root,
// comparing at path-segment boundaries so "/proj2" is never considered
// under "/proj".
func isUnderRoot(path, root string) bool {
	path = strings.TrimSuffix(path, "/")
	root = strings.TrimSuffix(root, "/")
	if path == root {
		return true
	}
	return strings.HasPrefix(path, root+"/")
}
