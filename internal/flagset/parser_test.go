package flagset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func kw(name, text string) Keyword {
	return Keyword{Name: name, Text: text}
}

func callable(name, text string) Keyword {
	return Keyword{Name: name, Text: text, Callable: true}
}

func TestAddArgument_RegistersTypedFlag(t *testing.T) {
	p := New("test")
	err := p.AddArgument([]string{"--min-num-features"}, []Keyword{
		callable("type", "int"),
		kw("default", "8000"),
		kw("help", "Minimum number of features to extract per image."),
	})
	require.NoError(t, err)

	flag := p.Lookup("--min-num-features")
	require.NotNil(t, flag)
	require.Equal(t, "min-num-features", flag.Name)
	require.Equal(t, "int", flag.Value.Type())
	require.Equal(t, "8000", flag.DefValue)
	require.Equal(t, "Minimum number of features to extract per image.", flag.Usage)

	require.NoError(t, flag.Value.Set("10000"))
	require.Equal(t, "10000", flag.Value.String())
	require.Error(t, flag.Value.Set("many"))
}

func TestAddArgument_ShortAndLongNames(t *testing.T) {
	p := New("test")
	require.NoError(t, p.AddArgument([]string{"--verbose", "-v"}, []Keyword{kw("action", "store_true")}))

	flag := p.Lookup("-v")
	require.NotNil(t, flag)
	require.Equal(t, "verbose", flag.Name)
	require.Equal(t, "v", flag.Shorthand)
	require.Equal(t, "bool", flag.Value.Type())
	require.Equal(t, "false", flag.DefValue)
	require.Equal(t, "true", flag.NoOptDefVal)
}

func TestAddArgument_Conflicts(t *testing.T) {
	testCases := []struct {
		name   string
		first  []string
		second []string
	}{
		{name: "same long option", first: []string{"--fast"}, second: []string{"--fast"}},
		{name: "same short option", first: []string{"--fast", "-f"}, second: []string{"--force", "-f"}},
		{name: "long alias reused", first: []string{"--dsm", "--dem"}, second: []string{"--dem"}},
		{name: "short only option reused", first: []string{"-x"}, second: []string{"--xray", "-x"}},
		{name: "help is registered", first: []string{"--verbose"}, second: []string{"--help"}},
		{name: "help shorthand is registered", first: []string{"--verbose"}, second: []string{"-h"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := New("test")
			require.NoError(t, p.AddArgument(tc.first, nil))
			err := p.AddArgument(tc.second, nil)
			require.Error(t, err)
			require.Contains(t, err.Error(), "conflicting option string")
		})
	}
}

func TestAddArgument_RejectsMalformedDeclarations(t *testing.T) {
	testCases := []struct {
		name    string
		names   []string
		kwargs  []Keyword
		wantErr string
	}{
		{name: "no names", wantErr: "at least one name"},
		{name: "unknown keyword", names: []string{"--a"}, kwargs: []Keyword{kw("colour", "red")}, wantErr: "unexpected keyword argument 'colour'"},
		{name: "unknown action", names: []string{"--a"}, kwargs: []Keyword{kw("action", "store_maybe")}, wantErr: "unknown action"},
		{name: "type not callable", names: []string{"--a"}, kwargs: []Keyword{kw("type", "int")}, wantErr: "is not callable"},
		{name: "required positional", names: []string{"name"}, kwargs: []Keyword{kw("required", "true")}, wantErr: "invalid argument for positionals"},
		{name: "dest on positional", names: []string{"name"}, kwargs: []Keyword{kw("dest", "other")}, wantErr: "dest supplied twice"},
		{name: "mixed positional and option", names: []string{"name", "--name"}, wantErr: "must start with a character '-'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := New("test").AddArgument(tc.names, tc.kwargs)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestAddArgument_AcceptsCallableActionsAndTypes(t *testing.T) {
	p := New("test")
	require.NoError(t, p.AddArgument([]string{"--rerun-from"}, []Keyword{
		callable("action", "StoreValue"),
		callable("type", "path_or_json_string"),
		kw("choices", `["dataset","opensfm"]`),
		kw("metavar", "<string>"),
	}))

	flag := p.Lookup("--rerun-from")
	require.NotNil(t, flag)
	require.Equal(t, "string", flag.Value.Type())
	require.Equal(t, []string{`["dataset","opensfm"]`}, flag.Annotations["choices"])
	require.Equal(t, []string{"<string>"}, flag.Annotations["metavar"])
}

func TestAddArgument_NullKeywordsAreIgnoredByTheParser(t *testing.T) {
	p := New("test")
	require.NoError(t, p.AddArgument([]string{"--a"}, []Keyword{
		{Name: "type", Text: "null", Null: true},
		{Name: "default", Text: "null", Null: true},
	}))
	require.Equal(t, "string", p.Lookup("--a").Value.Type())
	require.Equal(t, "", p.Lookup("--a").DefValue)
}

func TestAddArgument_SuppressedHelpHidesFlag(t *testing.T) {
	p := New("test")
	require.NoError(t, p.AddArgument([]string{"--internal"}, []Keyword{kw("help", Suppress)}))
	require.True(t, p.Lookup("--internal").Hidden)
	require.NotContains(t, p.FlagUsages(), "internal")
}

func TestAddArgument_Positionals(t *testing.T) {
	p := New("test")
	require.NoError(t, p.AddArgument([]string{"name"}, []Keyword{kw("metavar", "<dataset name>")}))
	require.NoError(t, p.AddArgument([]string{"images"}, []Keyword{kw("nargs", "*")}))
	require.Equal(t, []string{"name", "images"}, p.Positionals())
	require.Nil(t, p.Lookup("name"))
}

func TestAddArgument_AppendCollectsValues(t *testing.T) {
	p := New("test")
	require.NoError(t, p.AddArgument([]string{"--tile"}, []Keyword{kw("action", "append")}))
	require.Equal(t, "stringSlice", p.Lookup("--tile").Value.Type())
	value := p.Lookup("--tile").Value
	require.NoError(t, value.Set("a"))
	require.NoError(t, value.Set("b"))
	require.Equal(t, "a,b", value.String())
}

func TestFlagUsages_SkipsSuppressedOptions(t *testing.T) {
	p := New("test")
	require.NoError(t, p.AddArgument([]string{"--shown"}, []Keyword{kw("help", "Visible option.")}))
	require.NoError(t, p.AddArgument([]string{"--hidden"}, []Keyword{kw("help", Suppress)}))

	usage := p.FlagUsages()
	require.Contains(t, usage, "--shown")
	require.Contains(t, usage, "Visible option.")
	require.NotContains(t, usage, "--hidden")
}

func TestAddArgument_DistinctOptionStringsDoNotConflict(t *testing.T) {
	testCases := []struct {
		name   string
		first  []string
		second []string
	}{
		{name: "short and long spelling", first: []string{"-x"}, second: []string{"--x"}},
		{name: "long and short spelling", first: []string{"--x"}, second: []string{"-x"}},
		{name: "single dash long", first: []string{"-rerun"}, second: []string{"--rerun"}},
		{name: "triple dash", first: []string{"---x"}, second: []string{"-x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := New("test")
			require.NoError(t, p.AddArgument(tc.first, []Keyword{kw("help", "first")}))
			require.NoError(t, p.AddArgument(tc.second, []Keyword{kw("help", "second")}))

			require.Equal(t, "first", p.Lookup(tc.first[0]).Usage)
			require.Equal(t, "second", p.Lookup(tc.second[0]).Usage)
			require.NotSame(t, p.Lookup(tc.first[0]), p.Lookup(tc.second[0]))
		})
	}
}

func TestAddArgument_RepeatedNameInOneDeclaration(t *testing.T) {
	p := New("test")
	require.NotPanics(t, func() {
		require.NoError(t, p.AddArgument([]string{"--a", "--a", "-a", "-a"}, []Keyword{kw("help", "dup")}))
	})

	flag := p.Lookup("--a")
	require.NotNil(t, flag)
	require.Same(t, flag, p.Lookup("-a"))
	require.Equal(t, "a", flag.Shorthand)

	err := p.AddArgument([]string{"--a"}, nil)
	require.ErrorContains(t, err, "conflicting option string: --a")
}

func TestNew_RegistersHelp(t *testing.T) {
	p := New("test")
	flag := p.Lookup("--help")
	require.NotNil(t, flag)
	require.Same(t, flag, p.Lookup("-h"))
	require.Equal(t, "bool", flag.Value.Type())
	require.Contains(t, p.FlagUsages(), "show this help message and exit")
	require.Empty(t, p.Positionals())
}
