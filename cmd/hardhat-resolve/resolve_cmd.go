package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/trading2024/hardhat/cmd/hardhat-resolve/importscan"
	"github.com/trading2024/hardhat/internal/fsadapter"
	"github.com/trading2024/hardhat/internal/nodelocator"
	"github.com/trading2024/hardhat/resolve"
)

type resolveOutput struct {
	Files      []fileOutput        `json:"files"`
	Remappings []resolve.Remapping `json:"remappings"`
}

type fileOutput struct {
	SourceName   string `json:"sourceName"`
	AbsolutePath string `json:"absolutePath"`
	Package      string `json:"package,omitempty"`
}

func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <entry-file> [more entry files...]",
		Short: "Resolve the transitive import graph of the given entry files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), args)
		},
	}
}

func runResolve(ctx context.Context, entryArgs []string) error {
	projectRoot := flagProjectRoot
	if projectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		projectRoot = wd
	}
	projectRoot = filepath.ToSlash(projectRoot)

	if flagVerbose {
		logger.LogResolvefln("project root: %s", projectRoot)
	}

	r, err := resolve.Create(ctx, projectRoot, flagRemappings, projectRoot, fsadapter.New(), nodelocator.New())
	if err != nil {
		return err
	}

	var (
		queue   []*resolve.ResolvedFile
		visited = make(map[string]bool)
		out     []fileOutput
	)

	for _, entry := range entryArgs {
		abs, err := filepath.Abs(entry)
		if err != nil {
			return err
		}
		rf, err := r.ResolveProjectFile(ctx, filepath.ToSlash(abs))
		if err != nil {
			return err
		}
		queue = append(queue, rf)
	}

	for len(queue) > 0 {
		rf := queue[0]
		queue = queue[1:]

		if visited[rf.SourceName] {
			continue
		}
		visited[rf.SourceName] = true

		fo := fileOutput{SourceName: rf.SourceName, AbsolutePath: rf.AbsolutePath}
		if rf.IsPackage {
			fo.Package = rf.Package.Name + "@" + rf.Package.Version
		}
		out = append(out, fo)

		if flagVerbose {
			logger.LogResolvefln("resolved %s", rf.SourceName)
		}

		for _, imp := range importscan.Extract(rf.Content) {
			child, err := r.ResolveImport(ctx, rf, imp)
			if err != nil {
				return fmt.Errorf("resolving %q from %s: %w", imp, rf.SourceName, err)
			}
			if !visited[child.SourceName] {
				queue = append(queue, child)
			}
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resolveOutput{Files: out, Remappings: r.GetRemappings()})
}
