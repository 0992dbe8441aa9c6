package main

import (
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/stylekit/pkg/types"
)

var (
	resolveElement string
	resolveWatch   bool
)

func init() {
	cmd := newResolveCmd()
	cmd.Flags().StringVar(&resolveElement, "element", "", "Print only the element at this path (e.g. html/body/p)")
	cmd.Flags().BoolVarP(&resolveWatch, "watch", "w", false, "Re-resolve whenever the scenario file changes")
	rootCmd.AddCommand(cmd)
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <scenario.yaml>",
		Short: "Resolve and print each element's computed style",
		Long: `The resolve command interns each element's declarations, resolves
them against the parent's computed style and prints the result. Inherited
properties are marked.

Example:
  stylectl resolve page.yaml
  stylectl resolve page.yaml --element html/body/p
  stylectl resolve page.yaml --json
  stylectl resolve page.yaml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runResolve(args)
			if !resolveWatch {
				return err
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchFile(ctx, args[0], func() error {
				fmt.Println(render(headerStyle, "--- "+args[0]+" changed ---"))
				return runResolve(args)
			})
		},
	}
}

type propertyLine struct {
	ID        types.PropertyID `json:"id"`
	Name      string           `json:"name"`
	Value     string           `json:"value"`
	Inherited bool             `json:"inherited,omitempty"`
}

type elementOutput struct {
	Path       string         `json:"path"`
	Properties []propertyLine `json:"properties"`
}

type animationOutput struct {
	Name       string              `json:"name"`
	Properties map[string][]string `json:"properties"`
}

type resolveOutput struct {
	Scenario   string            `json:"scenario"`
	Elements   []elementOutput   `json:"elements"`
	Animations []animationOutput `json:"animations,omitempty"`
}

func runResolve(args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	s, err := loadScenario(args[0])
	if err != nil {
		return err
	}

	r := newResolver(reg)
	defer r.close()

	els, err := r.resolve(s)
	if err != nil {
		return err
	}
	defer r.release(els)

	out := resolveOutput{Scenario: s.Name}
	for _, el := range els {
		if resolveElement != "" && el.Path != resolveElement {
			continue
		}
		lines, err := r.properties(el.Computed)
		if err != nil {
			return fmt.Errorf("%s: %w", el.Path, err)
		}
		for i := range lines {
			lines[i].Inherited = !r.c.Has(el.Own, lines[i].ID)
		}
		out.Elements = append(out.Elements, elementOutput{Path: el.Path, Properties: lines})
	}
	if resolveElement != "" && len(out.Elements) == 0 {
		return fmt.Errorf("no element %q in %s", resolveElement, args[0])
	}

	set, err := r.animations(s)
	if err != nil {
		return err
	}
	defer set.Release()
	for _, name := range set.Names() {
		kfs, _ := set.Get(name)
		ao := animationOutput{Name: name, Properties: make(map[string][]string)}
		kfs.IDs().Each(func(id types.PropertyID) {
			f := kfs[id]
			keys := make([]string, 0, f.Len())
			for i := 0; i < f.Len(); i++ {
				k := f.At(i)
				v, err := k.Prop.Value()
				if err != nil {
					continue
				}
				keys = append(keys, fmt.Sprintf("%g%%=%s", k.Time*100, v))
			}
			ao.Properties[reg.Name(id)] = keys
		})
		out.Animations = append(out.Animations, ao)
	}

	st := r.c.Stats()
	printVerbose("cache: %d value tables, %d combinations, %d properties\n",
		st.Values, st.Combinations, st.Attributes)

	if jsonOut {
		return printJSON(out)
	}
	printResolve(out)
	return nil
}

func printResolve(out resolveOutput) {
	for _, el := range out.Elements {
		fmt.Println(render(pathStyle, el.Path))
		for _, line := range el.Properties {
			entry := fmt.Sprintf("  %s: %s", render(nameStyle, line.Name), line.Value)
			if line.Inherited {
				entry += " " + render(inheritedStyle, "(inherited)")
			}
			fmt.Println(entry)
		}
	}
	if len(out.Animations) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(render(headerStyle, "Animations"))
	for _, a := range out.Animations {
		fmt.Println(render(pathStyle, "@"+a.Name))
		for _, name := range slices.Sorted(maps.Keys(a.Properties)) {
			fmt.Printf("  %s: %s\n", render(nameStyle, name), strings.Join(a.Properties[name], " "))
		}
	}
}
