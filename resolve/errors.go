package resolve

import "github.com/pkg/errors"

// ErrorKind identifies the class of failure a resolution step produced, per
// the error catalog the driver is expected to map to user-visible messages.
type ErrorKind int

const (
	_ ErrorKind = iota
	InvalidUserRemapping
	InvalidNpmTarget
	PackageNotInstalled
	RemapIntoProject
	MonorepoVersionMismatch
	PackageVersionMismatch
	NotWithinProject
	ProjectFileMissing
	IncorrectCasing
	ImportOutsideProject
	ImportOutsidePackage
	RemapNotLocal
	MalformedNpmImport
	DependencyMissing
	FileMissingInPackage
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidUserRemapping:
		return "InvalidUserRemapping"
	case InvalidNpmTarget:
		return "InvalidNpmTarget"
	case PackageNotInstalled:
		return "PackageNotInstalled"
	case RemapIntoProject:
		return "RemapIntoProject"
	case MonorepoVersionMismatch:
		return "MonorepoVersionMismatch"
	case PackageVersionMismatch:
		return "PackageVersionMismatch"
	case NotWithinProject:
		return "NotWithinProject"
	case ProjectFileMissing:
		return "ProjectFileMissing"
	case IncorrectCasing:
		return "IncorrectCasing"
	case ImportOutsideProject:
		return "ImportOutsideProject"
	case ImportOutsidePackage:
		return "ImportOutsidePackage"
	case RemapNotLocal:
		return "RemapNotLocal"
	case MalformedNpmImport:
		return "MalformedNpmImport"
	case DependencyMissing:
		return "DependencyMissing"
	case FileMissingInPackage:
		return "FileMissingInPackage"
	default:
		return "Unknown"
	}
}

// ResolveError is the error type the resolver returns for every failure
// class in ErrorKind. Kind lets a driver switch on the failure class; the
// optional fields are populated only for the kinds that carry extra context
// (see spec.md §7). Failures of the FileSystem or ModuleLocator themselves,
// and a concurrent call against one Resolver, are returned as wrapped
// errors of their own rather than as a ResolveError.
type ResolveError struct {
	Kind ErrorKind

	// CorrectCasing is set for IncorrectCasing.
	CorrectCasing string

	// Remapping is set for RemapNotLocal.
	Remapping *UserRemapping

	message string
	cause   error
}

func newErr(kind ErrorKind, format string, args ...interface{}) *ResolveError {
	return &ResolveError{Kind: kind, message: errors.Errorf(format, args...).Error()}
}

func wrapErr(cause error, kind ErrorKind, format string, args ...interface{}) *ResolveError {
	return &ResolveError{Kind: kind, message: errors.Errorf(format, args...).Error(), cause: cause}
}

func (e *ResolveError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *ResolveError) Unwrap() error { return e.cause }

// Is reports whether target is a *ResolveError with the same Kind, so
// callers can write errors.Is(err, &resolve.ResolveError{Kind: ...}).
func (e *ResolveError) Is(target error) bool {
	other, ok := target.(*ResolveError)
	return ok && other.Kind == e.Kind
}
