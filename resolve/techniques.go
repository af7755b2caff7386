package resolve

import (
	"context"

	"github.com/pkg/errors"
)

// technique1 resolves a project-relative path, validating existence and
// casing under the project root (spec.md §4.I "Technique 1").
func (r *Resolver) technique1(ctx context.Context, pathWithinProject string) (*ResolvedFile, error) {
	if rf, ok := r.cache.get(pathWithinProject); ok {
		return rf, nil
	}

	trueRel, found, err := r.fs.TrueCase(ctx, r.projectRoot, pathWithinProject)
	if err != nil {
		return nil, errors.Wrap(err, "resolve: checking project file casing")
	}
	if !found {
		return nil, newErr(ProjectFileMissing, "%s does not exist in the project", pathWithinProject)
	}
	if trueRel != pathWithinProject {
		return nil, &ResolveError{Kind: IncorrectCasing, CorrectCasing: trueRel, message: "incorrect casing for " + pathWithinProject}
	}

	absPath := r.projectRoot + "/" + pathWithinProject
	content, err := r.fs.ReadUTF8(ctx, absPath)
	if err != nil {
		return nil, errors.Wrap(err, "resolve: reading project file")
	}

	rf := NewProjectFile(pathWithinProject, absPath, content)
	r.cache.put(rf)
	return rf, nil
}

// technique2 resolves a user-remapped import that targets a package
// (spec.md §4.I "Technique 2"). No dependency-map entry is recorded: the
// user's own remapping already covers this case in the emitted output.
func (r *Resolver) technique2(ctx context.Context, um *UserRemapping, remapped string) (*ResolvedFile, error) {
	pkg := um.TargetPackage
	if !hasSourcePrefix(remapped, pkg.RootSourceName) {
		rerr := newErr(RemapNotLocal, "remapping %q did not produce a path under %s", um.RawText, pkg.RootSourceName)
		rerr.Remapping = um
		return nil, rerr
	}
	return r.packageFileFor(ctx, pkg, remapped)
}

// packageFileFor validates existence and casing of fullSourceName (which
// must begin with pkg.RootSourceName) under pkg's root, and constructs the
// PackageFile. It backs both Technique 3 (intra-package import) and the
// package-targeted paths of Technique 2 and Technique 4.
func (r *Resolver) packageFileFor(ctx context.Context, pkg *Package, fullSourceName string) (*ResolvedFile, error) {
	if rf, ok := r.cache.get(fullSourceName); ok {
		return rf, nil
	}

	relative := stripSourcePrefix(fullSourceName, pkg.RootSourceName)

	trueRel, found, err := r.fs.TrueCase(ctx, pkg.RootAbsolutePath, relative)
	if err != nil {
		return nil, errors.Wrap(err, "resolve: checking package file casing")
	}
	if !found {
		return nil, newErr(FileMissingInPackage, "%s does not exist in package %s", relative, pkg.Name)
	}
	if trueRel != relative {
		return nil, &ResolveError{Kind: IncorrectCasing, CorrectCasing: pkg.RootSourceName + trueRel, message: "incorrect casing for " + fullSourceName}
	}

	absPath := pkg.RootAbsolutePath + "/" + relative
	content, err := r.fs.ReadUTF8(ctx, absPath)
	if err != nil {
		return nil, errors.Wrap(err, "resolve: reading package file")
	}

	rf := NewPackageFile(fullSourceName, absPath, content, pkg)
	r.cache.put(rf)
	return rf, nil
}

// technique3 resolves an intra-package import: from is already known to be
// inside pkg (the caller, resolveFromPackage, established that), and direct
// is the full in-package source name.
func (r *Resolver) technique3(ctx context.Context, pkg *Package, direct string) (*ResolvedFile, error) {
	return r.packageFileFor(ctx, pkg, direct)
}

// technique4 resolves a cross-package npm import, discovering (and
// memoizing in the dependency map) the target package or project on first
// use for a given (origin, imported) pair (spec.md §4.I "Technique 4").
func (r *Resolver) technique4(ctx context.Context, from *ResolvedFile, direct string) (*ResolvedFile, error) {
	parsed, err := parseNpmImport(direct)
	if err != nil {
		return nil, err
	}

	origin := ProjectSourceName
	baseDir := r.projectRoot
	requester := "the project"
	if from.IsPackage {
		origin = from.Package.RootSourceName
		baseDir = from.Package.RootAbsolutePath
		requester = "package " + from.Package.Name
	}

	dep, ok := r.depMap.get(origin, parsed.Package)
	if !ok {
		manifestPath, found, lerr := r.locator.LocateManifest(ctx, parsed.Package, baseDir)
		if lerr != nil {
			return nil, errors.Wrap(lerr, "resolve: locating package manifest")
		}
		if !found {
			return nil, newErr(DependencyMissing, "%s imports %q but package %s is not installed", requester, direct, parsed.Package)
		}

		rootAbs := dirOf(manifestPath)
		class := classifyManifest(rootAbs, r.projectRoot)

		switch class {
		case classProject:
			dep = projectDependency
		case classMonorepoSibling:
			var manifest packageManifest
			if merr := r.fs.ReadJSON(ctx, manifestPath, &manifest); merr != nil {
				return nil, errors.Wrap(merr, "resolve: reading sibling package manifest")
			}
			dep = packageDependency(&Package{
				Name:             manifest.Name,
				Version:          "local",
				RootAbsolutePath: rootAbs,
				RootSourceName:   "npm/" + manifest.Name + "@local/",
			})
		case classInstalled:
			var manifest packageManifest
			if merr := r.fs.ReadJSON(ctx, manifestPath, &manifest); merr != nil {
				return nil, errors.Wrap(merr, "resolve: reading installed package manifest")
			}
			dep = packageDependency(&Package{
				Name:             manifest.Name,
				Version:          manifest.Version,
				RootAbsolutePath: rootAbs,
				RootSourceName:   "npm/" + manifest.Name + "@" + manifest.Version + "/",
			})
		}
	}

	var rf *ResolvedFile
	if dep.isProject {
		rf, err = r.technique1(ctx, parsed.Path)
	} else {
		rf, err = r.packageFileFor(ctx, dep.pkg, dep.pkg.RootSourceName+parsed.Path)
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		r.depMap.set(origin, parsed.Package, dep)
	}
	return rf, nil
}
