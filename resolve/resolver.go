package resolve

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sdboyer/constext"
)

// HardhatConsole is the magic constant spec.md §6 calls out: it is always
// routed through npm, even if a local directory happens to be named
// "hardhat". Centralized here per spec.md §9.
const HardhatConsole = "hardhat/console.sol"

// Resolver is the resolution engine of spec.md §4.I. It is not
// thread-shared: callers must serialize requests against one instance
// (spec.md §5). inFlight enforces that with a simple non-reentrant guard,
// the same spirit as the teacher's callManager in deducers.go, stripped of
// the metrics bookkeeping this module has no use for.
type Resolver struct {
	projectRoot      string // absolute, forward-slash, no trailing slash
	workingDirectory string

	fs      FileSystem
	locator ModuleLocator

	userRemappings []*UserRemapping
	trie           remappingTrie

	cache  *resolvedFileCache
	depMap *dependencyMap

	bg context.Context

	mu      sync.Mutex
	inFlight bool
}

// Create validates the raw remapping strings and returns a ready-to-use
// Resolver, per spec.md §6's `create`. projectRoot must be an absolute,
// forward-slash path. workingDirectory is used only for user-facing path
// shortening and may be empty.
func Create(ctx context.Context, projectRoot string, rawRemappings []string, workingDirectory string, fs FileSystem, locator ModuleLocator) (*Resolver, error) {
	projectRoot = strings.TrimSuffix(projectRoot, "/")

	userRemappings, err := validateUserRemappings(ctx, rawRemappings, projectRoot, fs, locator)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		projectRoot:      projectRoot,
		workingDirectory: strings.TrimSuffix(workingDirectory, "/"),
		fs:               fs,
		locator:          locator,
		userRemappings:   userRemappings,
		trie:             newRemappingTrie(userRemappings),
		cache:            newResolvedFileCache(),
		depMap:           newDependencyMap(),
		bg:               context.Background(),
	}, nil
}

// enter combines the caller's context with the resolver's own background
// context (github.com/sdboyer/constext.Cons, as the teacher's
// callManager.setUpCall does) and enforces the single-writer discipline of
// spec.md §5: a cancelled or aborted call never leaves the cache or
// dependency map touched, because nothing is committed until this
// function's caller returns successfully.
func (r *Resolver) enter(ctx context.Context) (context.Context, func(), error) {
	r.mu.Lock()
	if r.inFlight {
		r.mu.Unlock()
		return nil, nil, errors.New("resolve: concurrent call against a single Resolver is not supported")
	}
	r.inFlight = true
	r.mu.Unlock()

	cctx, cancel := constext.Cons(ctx, r.bg)
	return cctx, func() {
		cancel()
		r.mu.Lock()
		r.inFlight = false
		r.mu.Unlock()
	}, nil
}

// ResolveProjectFile resolves an absolute path known to be a project entry
// file into its ProjectFile, per spec.md §4.I.
func (r *Resolver) ResolveProjectFile(ctx context.Context, absolutePath string) (*ResolvedFile, error) {
	cctx, done, err := r.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer done()

	absolutePath = strings.TrimSuffix(absolutePath, "/")
	if !hasSourcePrefix(absolutePath, r.projectRoot) || absolutePath == r.projectRoot {
		return nil, newErr(NotWithinProject, "%s is not within project root %s", r.displayPath(absolutePath), r.displayPath(r.projectRoot))
	}
	relative := stripSourcePrefix(absolutePath, r.projectRoot)

	if rf, ok := r.cache.get(relative); ok {
		return rf, nil
	}
	return r.technique1(cctx, relative)
}

// ResolveImport resolves an import string written inside from, per
// spec.md §4.I.
func (r *Resolver) ResolveImport(ctx context.Context, from *ResolvedFile, importString string) (*ResolvedFile, error) {
	cctx, done, err := r.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer done()

	direct, err := r.computeDirectImport(from, importString)
	if err != nil {
		return nil, err
	}

	if !from.IsPackage {
		return r.resolveFromProject(cctx, from, direct)
	}
	return r.resolveFromPackage(cctx, from, direct)
}

// GetRemappings derives the external-consumer remapping table, per
// spec.md §4.J. It is pure and may be called at any time.
func (r *Resolver) GetRemappings() []Remapping {
	return r.getRemappings()
}

func (r *Resolver) computeDirectImport(from *ResolvedFile, importString string) (string, error) {
	if !strings.HasPrefix(importString, "./") && !strings.HasPrefix(importString, "../") {
		return importString, nil
	}

	direct := joinSource(dirOf(from.SourceName), importString)

	if !from.IsPackage {
		if strings.HasPrefix(direct, "../") || direct == ".." {
			return "", newErr(ImportOutsideProject, "import %q from %s escapes the project root", importString, from.SourceName)
		}
		return direct, nil
	}

	if !hasSourcePrefix(direct, from.Package.RootSourceName) {
		return "", newErr(ImportOutsidePackage, "import %q from %s escapes package %s", importString, from.SourceName, from.Package.Name)
	}
	return direct, nil
}

func (r *Resolver) resolveFromProject(ctx context.Context, from *ResolvedFile, direct string) (*ResolvedFile, error) {
	if um := r.trie.selectRemapping(from.SourceName, direct); um != nil {
		remapped := applyRemapping(um, direct)
		if um.TargetPackage != nil {
			return r.technique2(ctx, um, remapped)
		}
		local, err := r.isLocal(ctx, remapped, r.projectRoot)
		if err != nil {
			return nil, err
		}
		if !local {
			return nil, &ResolveError{Kind: RemapNotLocal, Remapping: um, message: "remapping " + um.RawText + " did not produce a local import; use an npm/ target instead"}
		}
		return r.technique1(ctx, remapped)
	}

	local, err := r.isLocal(ctx, direct, r.projectRoot)
	if err != nil {
		return nil, err
	}
	if local {
		return r.technique1(ctx, direct)
	}
	return r.technique4(ctx, from, direct)
}

func (r *Resolver) resolveFromPackage(ctx context.Context, from *ResolvedFile, direct string) (*ResolvedFile, error) {
	pkg := from.Package
	if hasSourcePrefix(direct, pkg.RootSourceName) {
		return r.technique3(ctx, pkg, direct)
	}

	local, err := r.isLocal(ctx, direct, pkg.RootAbsolutePath)
	if err != nil {
		return nil, err
	}
	if local {
		return r.technique3(ctx, pkg, pkg.RootSourceName+direct)
	}

	return r.technique4(ctx, from, direct)
}

// isLocal implements the locality predicate of spec.md §4.I.
func (r *Resolver) isLocal(ctx context.Context, direct, rootAbs string) (bool, error) {
	if direct == HardhatConsole {
		return false, nil
	}
	if !strings.Contains(direct, "/") {
		return true, nil
	}
	exists, err := r.fs.Exists(ctx, rootAbs+"/"+firstSegment(direct))
	if err != nil {
		return false, errors.Wrap(err, "resolve: checking local import segment")
	}
	return exists, nil
}

func (r *Resolver) displayPath(absPath string) string {
	return shortenForDisplay(r.workingDirectory, absPath)
}
