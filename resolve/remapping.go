package resolve

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver"
)

// npmTargetRegexp anchors the npm/<name>@<version>/<path> grammar spec.md
// §4.B.3 gives for a remapping target. <version> is either the literal
// "local" or a dotted triple, validated against semver below so a target
// like "npm/dep@1.2/x" (missing the patch component) is rejected the same
// way an under-specified constraint would be rejected by the teacher's
// Masterminds/semver-backed constraint parsing.
var npmTargetRegexp = regexp.MustCompile(`^npm/((?:@[a-z0-9-~._]+/)?[a-z0-9-~][a-z0-9-~._]*)@(local|[^/]+)(?:/(.*))?$`)

// surfaceRegexp splits the `context:prefix=target` textual grammar.
var surfaceRegexp = regexp.MustCompile(`^(?:([^:]*):)?([^=]*)=(.*)$`)

// parseUserRemappingText splits the textual surface grammar into its three
// parts without yet validating or resolving the target package.
func parseUserRemappingText(raw string) (context_, prefix, target string, err error) {
	m := surfaceRegexp.FindStringSubmatch(raw)
	if m == nil {
		return "", "", "", newErr(InvalidUserRemapping, "malformed remapping %q", raw)
	}
	return m[1], m[2], m[3], nil
}

// isNpmTarget reports whether target names a package under the npm/ scheme.
func isNpmTarget(target string) bool {
	return strings.HasPrefix(target, "npm/")
}

// parseNpmTarget parses target as npm/<name>@<version>/<path>, failing
// InvalidNpmTarget on any deviation from the grammar.
func parseNpmTarget(target string) (name, version, rootSourceName string, err error) {
	m := npmTargetRegexp.FindStringSubmatch(target)
	if m == nil {
		return "", "", "", newErr(InvalidNpmTarget, "%q is not a valid npm/<name>@<version>/ target", target)
	}
	name, version = m[1], m[2]
	if version != "local" {
		if _, verr := semver.NewVersion(version); verr != nil {
			return "", "", "", wrapErr(verr, InvalidNpmTarget, "%q has an invalid version", target)
		}
		// Require the full dotted triple; semver.NewVersion alone accepts
		// partial versions like "1.2", which spec.md §4.B.3 disallows.
		if strings.Count(version, ".") != 2 {
			return "", "", "", newErr(InvalidNpmTarget, "%q must use a dotted major.minor.patch version or \"local\"", target)
		}
	}
	return name, version, "npm/" + name + "@" + version + "/", nil
}

// validateUserRemappings parses and validates the raw remapping strings
// supplied at construction, resolving any npm/ targets to a Package via
// the locator. It fails fast on the first invalid entry, per spec.md §3
// "Lifecycle".
func validateUserRemappings(ctx context.Context, raw []string, projectRoot string, fs FileSystem, locator ModuleLocator) ([]*UserRemapping, error) {
	out := make([]*UserRemapping, 0, len(raw))
	for _, r := range raw {
		contextPart, prefix, target, err := parseUserRemappingText(r)
		if err != nil {
			return nil, err
		}
		if isNpmTarget(contextPart) {
			return nil, newErr(InvalidUserRemapping, "remapping %q has an npm/ context, which is not allowed", r)
		}

		um := &UserRemapping{RawText: r, Context: contextPart, Prefix: prefix, Target: target}

		if isNpmTarget(target) {
			name, version, rootSourceName, perr := parseNpmTarget(target)
			if perr != nil {
				return nil, perr
			}

			manifestPath, found, lerr := locator.LocateManifest(ctx, name, projectRoot)
			if lerr != nil {
				return nil, wrapErr(lerr, PackageNotInstalled, "locating %s", name)
			}
			if !found {
				return nil, newErr(PackageNotInstalled, "package %s referenced by remapping %q is not installed", name, r)
			}

			rootAbs := filepath.ToSlash(filepath.Dir(manifestPath))
			class := classifyManifest(rootAbs, projectRoot)

			switch class {
			case classProject:
				return nil, newErr(RemapIntoProject, "remapping %q targets the project's own package.json", r)
			case classMonorepoSibling:
				if version != "local" {
					return nil, newErr(MonorepoVersionMismatch, "remapping %q targets monorepo sibling %s but declares version %s instead of \"local\"", r, name, version)
				}
			case classInstalled:
				var manifest packageManifest
				if merr := fs.ReadJSON(ctx, manifestPath, &manifest); merr != nil {
					return nil, wrapErr(merr, PackageNotInstalled, "reading manifest for %s", name)
				}
				if manifest.Version != version {
					return nil, newErr(PackageVersionMismatch, "remapping %q declares version %s but installed %s is %s", r, version, name, manifest.Version)
				}
			}

			um.TargetPackage = &Package{
				Name:             name,
				Version:          version,
				RootAbsolutePath: rootAbs,
				RootSourceName:   rootSourceName,
			}
		}

		out = append(out, um)
	}
	return out, nil
}

// applyRemapping substitutes a matched remapping's prefix with its target
// inside a direct import, per spec.md §4.C.
func applyRemapping(um *UserRemapping, direct string) string {
	return um.Target + strings.TrimPrefix(direct, um.Prefix)
}
