// Package importscan is a minimal stand-in for the Solidity front end
// spec.md §1 marks out of scope: it extracts the import strings a .sol
// file's source text references, nothing more. Grounded on the regex
// approach rxtech-lab/solc-go uses in its own importResolver.extractImports.
package importscan

import "regexp"

// importRegexp matches `import "path";`, `import {Sym} from "path";`, and
// `import * as Name from "path";` forms.
var importRegexp = regexp.MustCompile(`import\s+(?:(?:\{[^}]*\}|\*\s+as\s+\w+|\w+)\s+from\s+)?["']([^"']+)["']`)

// Extract returns every import string found in source, in source order.
func Extract(source string) []string {
	matches := importRegexp.FindAllStringSubmatch(source, -1)
	if matches == nil {
		return nil
	}
	imports := make([]string, 0, len(matches))
	for _, m := range matches {
		imports = append(imports, m[1])
	}
	return imports
}
