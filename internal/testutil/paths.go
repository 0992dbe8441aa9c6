package testutil

// Test data paths relative to the repository root, for use with ResolvePath.
const (
	// ScenarioBasic is a three-level element tree exercising inheritance.
	ScenarioBasic = "testdata/scenarios/basic.yaml"

	// ScenarioRestyled is ScenarioBasic with the body colour and one
	// element's display changed.
	ScenarioRestyled = "testdata/scenarios/restyled.yaml"

	// RegistrySmall is a three-property registry in TOML.
	RegistrySmall = "testdata/registry/small.toml"
)
