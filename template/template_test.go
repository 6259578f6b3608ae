package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapValues adapts a plain map to the Values interface.
type mapValues map[string]string

func (m mapValues) Get(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantVars []string
		wantLits []string
	}{
		{"static", "editorial", nil, []string{"editorial"}},
		{"single placeholder", "{project}", []string{"project"}, nil},
		{"mixed", "cut_{cut}.mov", []string{"cut"}, []string{"cut_", ".mov"}},
		{"two placeholders", "{name}.{ext}", []string{"name", "ext"}, []string{"."}},
		{"repeated placeholder", "{a}_{a}", []string{"a"}, []string{"_"}},
		{"empty", "", nil, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tpl, err := Compile(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.raw, tpl.Raw())
			assert.Equal(t, tc.wantVars, tpl.Names())
			assert.Equal(t, tc.wantLits, tpl.Literals())
		})
	}
}

func TestCompile_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"adjacent placeholders", "{a}{b}"},
		{"unterminated placeholder", "{a"},
		{"bare open brace", "{"},
		{"stray close brace", "a}b"},
		{"empty placeholder", "{}"},
		{"nested open brace", "{a{b}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.raw)
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.raw, pe.Template)
		})
	}
}

func TestCompile_Introspection(t *testing.T) {
	bare := MustCompile("{asset}")
	assert.True(t, bare.PlaceholderOnly())
	assert.False(t, bare.Static())
	assert.Equal(t, "*", bare.Shape())

	mixed := MustCompile("{name}.{ext}")
	assert.False(t, mixed.PlaceholderOnly())
	assert.Equal(t, "*.*", mixed.Shape())

	static := MustCompile("editorial")
	assert.True(t, static.Static())
	assert.Equal(t, "editorial", static.Shape())
}

func TestFill(t *testing.T) {
	tpl := MustCompile("{name}.{ext}")
	out, err := tpl.Fill(mapValues{"name": "hero_model", "ext": "ma"})
	require.NoError(t, err)
	assert.Equal(t, "hero_model.ma", out)

	out, err = MustCompile("v{version}").Fill(mapValues{"version": "003"})
	require.NoError(t, err)
	assert.Equal(t, "v003", out)

	// Static templates need no bindings at all.
	out, err = MustCompile("editorial").Fill(nil)
	require.NoError(t, err)
	assert.Equal(t, "editorial", out)

	// A bound empty string is a value, not an absence.
	out, err = MustCompile("{a}.ma").Fill(mapValues{"a": ""})
	require.NoError(t, err)
	assert.Equal(t, ".ma", out)
}

func TestFill_MissingVariable(t *testing.T) {
	tpl := MustCompile("{name}.{ext}")
	_, err := tpl.Fill(mapValues{"name": "hero_model"})
	require.Error(t, err)

	var mv *MissingVariableError
	require.ErrorAs(t, err, &mv)
	assert.Equal(t, "ext", mv.Name)
	assert.Equal(t, "{name}.{ext}", mv.Template)

	// Nil values leave every placeholder unbound.
	_, err = tpl.Fill(nil)
	require.ErrorAs(t, err, &mv)
	assert.Equal(t, "name", mv.Name)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		segment string
		want    []Capture
	}{
		{"two placeholders", "{name}.{ext}", "hero_model.ma", []Capture{{"name", "hero_model"}, {"ext", "ma"}}},
		{"literal prefix", "cut_{cut}.mov", "cut_001.mov", []Capture{{"cut", "001"}}},
		{"literal head", "v{version}", "v003", []Capture{{"version", "003"}}},
		{"bare placeholder", "{asset}", "hero", []Capture{{"asset", "hero"}}},
		{"static", "editorial", "editorial", []Capture{}},
		{"empty capture", "{a}.ma", ".ma", []Capture{{"a", ""}}},
		{"empty template", "", "", []Capture{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			caps, err := MustCompile(tc.raw).Match(tc.segment)
			require.NoError(t, err)
			assert.Equal(t, tc.want, caps)
		})
	}
}

func TestMatch_LeftmostAnchors(t *testing.T) {
	// The first anchor occurrence wins: the leading placeholder takes
	// the shortest capture, the trailing one takes the rest.
	caps, err := MustCompile("{n}.{e}").Match("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, []Capture{{"n", "a"}, {"e", "b.c"}}, caps)

	// A trailing literal binds at its first occurrence too, so extra
	// repetitions of the anchor text do not match.
	_, err = MustCompile("{n}.ma").Match("a.ma.ma")
	require.Error(t, err)
}

func TestMatch_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		segment string
	}{
		{"anchor absent", "{name}.{ext}", "hero_model"},
		{"prefix mismatch", "img_{n}", "vid_1"},
		{"trailing text after static", "editorial", "editorials"},
		{"middle literal differs", "{a}_x_{b}", "1_y_2"},
		{"suffix mismatch", "{n}.ma", "shot.mb"},
		{"empty segment against literal", "v{n}", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MustCompile(tc.raw).Match(tc.segment)
			require.Error(t, err)
			var nm *NoMatchError
			require.ErrorAs(t, err, &nm)
			assert.Equal(t, tc.segment, nm.Segment)
		})
	}
}

func TestMatch_FillRoundTrip(t *testing.T) {
	vals := mapValues{"name": "hero_model", "ext": "ma"}
	tpl := MustCompile("{name}.{ext}")

	seg, err := tpl.Fill(vals)
	require.NoError(t, err)

	caps, err := tpl.Match(seg)
	require.NoError(t, err)
	got := map[string]string{}
	for _, c := range caps {
		got[c.Name] = c.Value
	}
	assert.Equal(t, map[string]string(vals), got)
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("{a}{b}") })
	assert.NotPanics(t, func() { MustCompile("{a}_{b}") })
}
