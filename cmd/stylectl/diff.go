package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/stylekit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <before.yaml> <after.yaml>",
		Short: "Show which computed properties change between two scenarios",
		Long: `The diff command resolves two scenarios in one style cache and
reports, per element path, the computed properties whose value differs.
Elements present in only one scenario are reported as added or removed.

Example:
  stylectl diff before.yaml after.yaml
  stylectl diff before.yaml after.yaml --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
}

type propertyChange struct {
	Name   string `json:"name"`
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

type elementDiff struct {
	Path    string           `json:"path"`
	Action  string           `json:"action"` // "added", "removed", "changed"
	Changes []propertyChange `json:"changes,omitempty"`
}

func runDiff(args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	before, err := loadScenario(args[0])
	if err != nil {
		return err
	}
	after, err := loadScenario(args[1])
	if err != nil {
		return err
	}

	printVerbose("Comparing %s and %s...\n", args[0], args[1])

	// Both trees must live in one cache for property handles to compare.
	r := newResolver(reg)
	defer r.close()

	a, err := r.resolve(before)
	if err != nil {
		return err
	}
	defer r.release(a)
	b, err := r.resolve(after)
	if err != nil {
		return err
	}
	defer r.release(b)

	byPath := make(map[string]resolved, len(b))
	for _, el := range b {
		byPath[el.Path] = el
	}

	diffs := make([]elementDiff, 0)
	seen := make(map[string]bool, len(a))
	for _, ea := range a {
		seen[ea.Path] = true
		eb, ok := byPath[ea.Path]
		if !ok {
			diffs = append(diffs, elementDiff{Path: ea.Path, Action: "removed"})
			continue
		}
		changed := r.c.Diff(ea.Computed, eb.Computed)
		if changed.Empty() {
			continue
		}
		d := elementDiff{Path: ea.Path, Action: "changed"}
		var derr error
		changed.Each(func(id types.PropertyID) {
			was, err := r.literal(ea.Computed, id)
			if err != nil {
				derr = err
			}
			now, err := r.literal(eb.Computed, id)
			if err != nil {
				derr = err
			}
			d.Changes = append(d.Changes, propertyChange{Name: reg.Name(id), Before: was, After: now})
		})
		if derr != nil {
			return fmt.Errorf("%s: %w", ea.Path, derr)
		}
		diffs = append(diffs, d)
	}
	for _, eb := range b {
		if !seen[eb.Path] {
			diffs = append(diffs, elementDiff{Path: eb.Path, Action: "added"})
		}
	}

	if jsonOut {
		return printJSON(diffs)
	}
	if len(diffs) == 0 {
		fmt.Println("No differences")
		return nil
	}
	for _, d := range diffs {
		switch d.Action {
		case "added":
			fmt.Println(render(nameStyle, "+ "+d.Path))
		case "removed":
			fmt.Println(render(removedStyle, "- "+d.Path))
		default:
			fmt.Println(render(pathStyle, "~ "+d.Path))
			for _, c := range d.Changes {
				fmt.Printf("  %s: %s -> %s\n", c.Name, orUnset(c.Before), render(changedStyle, orUnset(c.After)))
			}
		}
	}
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
