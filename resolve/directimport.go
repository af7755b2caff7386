package resolve

import "regexp"

// npmImportRegexp anchors the grammar spec.md §4.F gives for a direct
// import's npm branch: an optional @scope/ prefix, then a package name
// segment, then "/" and the remainder as the in-package path.
var npmImportRegexp = regexp.MustCompile(`^(@[a-z0-9-~._]+/)?([a-z0-9-~][a-z0-9-~._]*)/(.*)$`)

// parsedNpmImport is the (package, path-within-package) split of a direct
// import string that names an npm-style package.
type parsedNpmImport struct {
	Package string // includes the "@scope/" prefix, if any
	Path    string
}

// parseNpmImport splits direct into its package and in-package path,
// rejecting anything that does not match the anchored grammar.
func parseNpmImport(direct string) (parsedNpmImport, error) {
	m := npmImportRegexp.FindStringSubmatch(direct)
	if m == nil {
		return parsedNpmImport{}, newErr(MalformedNpmImport, "%q is not a valid npm-style import", direct)
	}
	return parsedNpmImport{Package: m[1] + m[2], Path: m[3]}, nil
}
