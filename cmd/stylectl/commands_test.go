package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stylekit/internal/testutil"
	"github.com/joshuapare/stylekit/pkg/types"
)

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name           string
		element        string
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:    "whole tree",
			element: "",
			wantContain: []string{
				"html\n  display: block\n  color: #000000\n",
				"html/body\n  display: block\n  color: #333333\n  font-family: \"Noto Sans\" (inherited)\n",
				"html/body/p\n",
				"  line-height: 1.5em\n",
				"html/body/em\n  color: #333333 (inherited)\n",
				"@fade",
				"opacity: 0%=0 100%=1",
				"color: 100%=#ffffff",
			},
		},
		{
			name:           "single element",
			element:        "html/body/em",
			wantContain:    []string{"font-style: italic", "font-size: 16px (inherited)"},
			wantNotContain: []string{"html/body/p", "display:", "margin-top"},
		},
		{
			name:    "missing element",
			element: "html/nav",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			resolveElement = tt.element

			output, err := captureOutput(t, func() error {
				return runResolve([]string{testutil.ResolvePath(t, testutil.ScenarioBasic)})
			})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestResolveCommand_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runResolve([]string{testutil.ResolvePath(t, testutil.ScenarioBasic)})
	})
	require.NoError(t, err)

	var out resolveOutput
	require.NoError(t, json.Unmarshal([]byte(output), &out))
	require.Equal(t, "basic", out.Scenario)
	require.Len(t, out.Elements, 4)
	require.Equal(t, "html/body/em", out.Elements[3].Path)
	require.Len(t, out.Animations, 1)
}

func TestResolveCommand_UnknownProperty(t *testing.T) {
	resetFlags()
	registryPath = testutil.ResolvePath(t, testutil.RegistrySmall)

	_, err := captureOutput(t, func() error {
		return runResolve([]string{testutil.ResolvePath(t, testutil.ScenarioBasic)})
	})
	require.ErrorIs(t, err, errUnknownProperty)
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestLoadScenario_DuplicateSiblings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: dup
root:
  name: html
  children:
    - name: body
      children:
        - name: p
          style: {color: red}
        - name: p
          style: {color: blue}
`), 0o644))

	_, err := loadScenario(path)
	require.ErrorIs(t, err, errDuplicateElement)
	require.ErrorIs(t, err, types.ErrInvalid)
	require.Contains(t, err.Error(), "html/body/p")

	resetFlags()
	_, err = captureOutput(t, func() error {
		return runDiff([]string{path, testutil.ResolvePath(t, testutil.ScenarioBasic)})
	})
	require.ErrorIs(t, err, errDuplicateElement, "diff refuses ambiguous paths")
}

func TestDiffCommand(t *testing.T) {
	resetFlags()
	output, err := captureOutput(t, func() error {
		return runDiff([]string{
			testutil.ResolvePath(t, testutil.ScenarioBasic),
			testutil.ResolvePath(t, testutil.ScenarioRestyled),
		})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{
		"~ html/body\n  color: #333333 -> #ff0000\n",
		"~ html/body/p\n  display: block -> inline\n  color: #333333 -> #ff0000\n",
		"~ html/body/em\n  color: #333333 -> #ff0000\n",
	})
	assertNotContains(t, output, []string{"~ html\n"})
}

func TestDiffCommand_Same(t *testing.T) {
	resetFlags()
	jsonOut = true
	path := testutil.ResolvePath(t, testutil.ScenarioBasic)

	output, err := captureOutput(t, func() error {
		return runDiff([]string{path, path})
	})
	require.NoError(t, err)

	var diffs []elementDiff
	require.NoError(t, json.Unmarshal([]byte(output), &diffs))
	require.Empty(t, diffs)
}

func TestPropsCommand(t *testing.T) {
	resetFlags()
	propsInherited = true

	output, err := captureOutput(t, runProps)
	require.NoError(t, err)
	assertContains(t, output, []string{"color", "font-size", "inherited"})
	assertNotContains(t, output, []string{"display", "margin-top"})
}

func TestPropsCommand_Registry(t *testing.T) {
	resetFlags()
	jsonOut = true
	registryPath = testutil.ResolvePath(t, testutil.RegistrySmall)

	output, err := captureOutput(t, runProps)
	require.NoError(t, err)

	var props []propOutput
	require.NoError(t, json.Unmarshal([]byte(output), &props))
	require.Equal(t, []propOutput{
		{ID: 0, Name: "color", Inherited: true, Animatable: true},
		{ID: 1, Name: "Display"},
		{ID: 2, Name: "font-size", Inherited: true},
	}, props)
}

func TestVersionCommand(t *testing.T) {
	resetFlags()
	output, err := captureOutput(t, runVersion)
	require.NoError(t, err)
	assertContains(t, output, []string{"stylectl ", "commit:", "go:     go"})

	jsonOut = true
	output, err = captureOutput(t, runVersion)
	require.NoError(t, err)

	var v versionOutput
	require.NoError(t, json.Unmarshal([]byte(output), &v))
	require.NotEmpty(t, v.Version)
	require.Equal(t, runtime.Version(), v.Go)
}
