package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	propsInherited  bool
	propsAnimatable bool
)

func init() {
	cmd := newPropsCmd()
	cmd.Flags().BoolVar(&propsInherited, "inherited", false, "List only inherited properties")
	cmd.Flags().BoolVar(&propsAnimatable, "animatable", false, "List only animatable properties")
	rootCmd.AddCommand(cmd)
}

func newPropsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "props",
		Short: "List the properties of the registry",
		Long: `The props command lists every property of the registry with its id
and flags.

Example:
  stylectl props
  stylectl props --inherited
  stylectl props --registry custom.toml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProps()
		},
	}
}

type propOutput struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Inherited  bool   `json:"inherited"`
	Animatable bool   `json:"animatable"`
}

func runProps() error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	var out []propOutput
	for _, d := range reg.Defs() {
		if propsInherited && !d.Inherited {
			continue
		}
		if propsAnimatable && !d.Animatable {
			continue
		}
		out = append(out, propOutput{
			ID:         int(d.ID),
			Name:       d.Name,
			Inherited:  d.Inherited,
			Animatable: d.Animatable,
		})
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Println(render(headerStyle, fmt.Sprintf("%4s  %-20s %s", "ID", "NAME", "FLAGS")))
	for _, p := range out {
		flags := ""
		if p.Inherited {
			flags += "inherited "
		}
		if p.Animatable {
			flags += "animatable"
		}
		fmt.Printf("%4d  %s %s\n", p.ID, render(nameStyle, fmt.Sprintf("%-20s", p.Name)), render(inheritedStyle, flags))
	}
	printVerbose("%d of %d properties\n", len(out), reg.Len())
	return nil
}
