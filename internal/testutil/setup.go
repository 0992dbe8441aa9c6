package testutil

import (
	"os"
	"testing"

	"github.com/joshuapare/stylekit/pkg/registry"
	"github.com/joshuapare/stylekit/pkg/stylecache"
	"github.com/joshuapare/stylekit/style/value"
)

// NewCache returns a cache built over the default registry's inherited set.
// The cache is closed when the test ends.
//
// Example:
//
//	c := testutil.NewCache(t)
//	color := testutil.Prop(t, c, "color", "red")
//	defer c.PropertyRelease(color)
func NewCache(t testing.TB) *stylecache.Cache {
	t.Helper()
	c := stylecache.New(registry.Default().Inherited())
	t.Cleanup(c.Close)
	return c
}

// Prop interns one declaration, e.g. Prop(t, c, "font-size", "12px"). The
// caller owns the returned reference.
func Prop(t testing.TB, c *stylecache.Cache, name, literal string) stylecache.Property {
	t.Helper()
	def, ok := registry.Default().Lookup(name)
	if !ok {
		t.Fatalf("unknown property %q", name)
	}
	data, err := value.ParseEncode(literal)
	if err != nil {
		t.Fatalf("property %s: %v", name, err)
	}
	return c.CreateProperty(def.ID, data)
}

// Props interns name/literal pairs into a vector the caller owns.
func Props(t testing.TB, c *stylecache.Cache, pairs ...string) stylecache.PropertyVector {
	t.Helper()
	if len(pairs)%2 != 0 {
		t.Fatalf("Props needs name/literal pairs, got %d strings", len(pairs))
	}
	vec := make(stylecache.PropertyVector, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		vec = append(vec, Prop(t, c, pairs[i], pairs[i+1]))
	}
	return vec
}

// ValueTable creates a value table from name/literal pairs. Only the table
// holds references to the properties; the caller owns the table.
func ValueTable(t testing.TB, c *stylecache.Cache, pairs ...string) stylecache.TableValue {
	t.Helper()
	vec := Props(t, c, pairs...)
	defer c.ReleaseVector(vec)
	return c.CreateFrom(vec)
}

// Literal returns the printed value of name on tbl, or "" when unset.
func Literal(t testing.TB, c *stylecache.Cache, tbl stylecache.Table, name string) string {
	t.Helper()
	def, ok := registry.Default().Lookup(name)
	if !ok {
		t.Fatalf("unknown property %q", name)
	}
	p := c.Find(tbl, def.ID)
	if p.IsZero() {
		return ""
	}
	v, err := c.PropertyValue(p)
	if err != nil {
		t.Fatalf("property %s: %v", name, err)
	}
	return v.String()
}

// RequireBalanced flushes c and fails the test unless every table and
// property has been released.
func RequireBalanced(t testing.TB, c *stylecache.Cache) {
	t.Helper()
	c.Flush()
	if st := c.Stats(); st != (stylecache.Stats{}) {
		t.Fatalf("unbalanced references after flush: %+v", st)
	}
}

// ResolvePath finds a repository-relative test file from any package
// directory. Calls t.Skip if it does not exist.
func ResolvePath(t testing.TB, relativePath string) string {
	t.Helper()

	candidates := []string{
		relativePath,
		"../" + relativePath,
		"../../" + relativePath,
		"../../../" + relativePath,
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skipf("test file not found at any candidate path starting from: %s", relativePath)
	return ""
}
