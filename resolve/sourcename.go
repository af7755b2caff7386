package resolve

import "strings"

// dirOf returns the forward-slash directory portion of a source name, the
// way path.Dir would, but never returning "." for a top-level file — the
// resolver always treats the project/package root as "".
func dirOf(sourceName string) string {
	i := strings.LastIndexByte(sourceName, '/')
	if i < 0 {
		return ""
	}
	return sourceName[:i]
}

// joinSource normalizes a relative import against a base directory using
// forward-slash arithmetic only, resolving "." and ".." segments. It never
// refuses to walk above the base itself — the caller (the engine) is
// responsible for rejecting a result that escapes a required prefix, per
// spec.md §4.A.
func joinSource(baseDir, relative string) string {
	var segs []string
	if baseDir != "" {
		segs = strings.Split(baseDir, "/")
	}

	for _, part := range strings.Split(relative, "/") {
		switch part {
		case "", ".":
			// skip
		case "..":
			if len(segs) > 0 && segs[len(segs)-1] != ".." {
				segs = segs[:len(segs)-1]
			} else {
				// Walked above the base; record with a leading ".." so the
				// caller can detect the escape.
				segs = append(segs, "..")
			}
		default:
			segs = append(segs, part)
		}
	}

	return strings.Join(segs, "/")
}

// hasSourcePrefix reports whether sourceName begins with prefix at a
// segment boundary (prefix itself may or may not end in "/").
func hasSourcePrefix(sourceName, prefix string) bool {
	if prefix == "" {
		return true
	}
	if !strings.HasPrefix(sourceName, prefix) {
		return false
	}
	if strings.HasSuffix(prefix, "/") {
		return true
	}
	return len(sourceName) == len(prefix) || sourceName[len(prefix)] == '/'
}

// stripSourcePrefix removes prefix (and a following "/" if present) from
// sourceName. Callers must have already validated hasSourcePrefix.
func stripSourcePrefix(sourceName, prefix string) string {
	rest := sourceName[len(prefix):]
	return strings.TrimPrefix(rest, "/")
}

// shortenForDisplay replaces a leading workingDirectory (expressed as an
// absolute, forward-slash path) with a relative form, for user-facing
// messages only — never used for cache keys or comparisons.
func shortenForDisplay(workingDirectory, absPath string) string {
	if workingDirectory == "" {
		return absPath
	}
	if absPath == workingDirectory {
		return "."
	}
	prefix := strings.TrimSuffix(workingDirectory, "/") + "/"
	if strings.HasPrefix(absPath, prefix) {
		return absPath[len(prefix):]
	}
	return absPath
}

// firstSegment returns the first "/"-delimited segment of s.
func firstSegment(s string) string {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i]
	}
	return s
}
