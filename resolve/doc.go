// Package resolve implements the import-graph resolver for a Solidity-style
// compilation unit whose dependencies are laid out the way a node-style
// package manager lays them out: a project root, an optional set of
// sibling packages outside that root, and installed packages nested under
// node_modules directories.
//
// The resolver turns an import string written inside one source file into a
// fully typed ResolvedFile, bookkeeping every cross-package edge it
// discovers along the way so that an equivalent remapping table can be
// handed back to an external compiler.
package resolve
