package flagset

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// Suppress is the help text that hides an option from usage output.
const Suppress = "==SUPPRESS=="

// Keyword is one keyword argument of a declaration, already reduced to text.
type Keyword struct {
	Name string
	Text string
	// Callable marks values that were functions or classes in the unit.
	Callable bool
	// Null marks null and undefined values.
	Null bool
}

var knownKeywords = map[string]struct{}{
	"action": {}, "nargs": {}, "const": {}, "default": {}, "type": {},
	"choices": {}, "required": {}, "help": {}, "metavar": {}, "dest": {},
	"version": {},
}

var knownActions = map[string]struct{}{
	"store": {}, "store_const": {}, "store_true": {}, "store_false": {},
	"append": {}, "append_const": {}, "count": {}, "help": {}, "version": {},
	"extend": {},
}

// builtinTypes maps the runtime's type tokens to pflag value type names.
var builtinTypes = map[string]string{
	"int":   "int",
	"float": "float64",
	"str":   "string",
	"bool":  "bool",
}

// Parser mirrors the declarations of one parser instance.
type Parser struct {
	flags       *pflag.FlagSet
	strings     map[string]string // option string -> flag name
	positionals []string
}

// helpNames are registered on every new Parser, the way argparse adds its
// help option.
var helpNames = []string{"-h", "--help"}

// New returns a Parser holding only the -h/--help option.
func New(name string) *Parser {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SortFlags = false
	flags.SetOutput(io.Discard)
	p := &Parser{
		flags:   flags,
		strings: make(map[string]string),
	}
	if err := p.AddArgument(helpNames, []Keyword{
		{Name: "action", Text: "help"},
		{Name: "help", Text: "show this help message and exit"},
	}); err != nil {
		panic(err)
	}
	return p
}

// AddArgument validates one declaration and registers it.
func (p *Parser) AddArgument(names []string, kwargs []Keyword) error {
	if len(names) == 0 {
		return errors.New("add_argument requires at least one name")
	}

	kw := make(map[string]Keyword, len(kwargs))
	for _, k := range kwargs {
		if _, ok := knownKeywords[k.Name]; !ok {
			return fmt.Errorf("add_argument() got an unexpected keyword argument '%s'", k.Name)
		}
		kw[k.Name] = k
	}
	if action, ok := present(kw, "action"); ok && !action.Callable {
		if _, known := knownActions[action.Text]; !known {
			return fmt.Errorf("unknown action %q", action.Text)
		}
	}
	if typ, ok := present(kw, "type"); ok && !typ.Callable {
		return fmt.Errorf("%q is not callable", typ.Text)
	}

	if len(names) == 1 && !isOptionString(names[0]) {
		return p.addPositional(names[0], kw)
	}
	return p.addOptional(names, kw)
}

func (p *Parser) addPositional(name string, kw map[string]Keyword) error {
	if _, ok := kw["dest"]; ok {
		return errors.New("dest supplied twice for positional argument")
	}
	if _, ok := kw["required"]; ok {
		return errors.New("'required' is an invalid argument for positionals")
	}
	p.positionals = append(p.positionals, name)
	return nil
}

func (p *Parser) addOptional(names []string, kw map[string]Keyword) (err error) {
	// Repeating a string within one declaration is allowed; it is registered once.
	var unique []string
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if !isOptionString(name) {
			return fmt.Errorf("invalid option string '%s': must start with a character '-'", name)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	for _, name := range unique {
		if _, taken := p.strings[name]; taken {
			return conflictError(names, name)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("argument %s: %v", strings.Join(names, "/"), r)
		}
	}()

	primary := unique[0]
	for _, name := range unique {
		if !isShort(name) {
			primary = name
			break
		}
	}
	shortSource := ""
	for _, name := range unique {
		if isShort(name) {
			shortSource = name
			break
		}
	}
	shorthand := ""
	if shortSource != "" {
		shorthand = shortSource[1:]
	}

	value := newValue(kw)
	flagName := p.flagName(primary)
	flag := p.flags.VarPF(value, flagName, shorthand, text(kw, "help"))
	flag.DefValue = value.text
	flag.NoOptDefVal = noOptDefault(kw)
	if help, ok := present(kw, "help"); ok && help.Text == Suppress {
		flag.Usage = ""
		flag.Hidden = true
	}
	for _, key := range []string{"choices", "metavar", "required", "dest"} {
		if k, ok := present(kw, key); ok {
			if err := p.flags.SetAnnotation(flagName, key, []string{k.Text}); err != nil {
				return err
			}
		}
	}
	p.strings[primary] = flagName
	if shortSource != "" {
		p.strings[shortSource] = flagName
	}

	for _, name := range unique {
		if name == primary || name == shortSource {
			continue
		}
		aliasName := p.flagName(name)
		aliasFlag := p.flags.VarPF(value, aliasName, "", flag.Usage)
		aliasFlag.DefValue = flag.DefValue
		aliasFlag.NoOptDefVal = flag.NoOptDefVal
		aliasFlag.Hidden = true
		p.strings[name] = aliasName
	}
	return nil
}

// flagName picks a pflag name for an option string that no registered flag
// uses yet. "--tile" becomes "tile"; single-dash strings keep their dash so
// "-x" and "--x" stay distinct.
func (p *Parser) flagName(optionString string) string {
	base := optionString
	if strings.HasPrefix(optionString, "--") && len(optionString) > 2 {
		base = optionString[2:]
	}
	name := base
	for i := 2; p.flags.Lookup(name) != nil; i++ {
		name = fmt.Sprintf("%s#%d", base, i)
	}
	return name
}

// Lookup returns the registered flag behind an option string such as
// "--min-num-features" or "-v".
func (p *Parser) Lookup(optionString string) *pflag.Flag {
	name, ok := p.strings[optionString]
	if !ok {
		return nil
	}
	return p.flags.Lookup(name)
}

// Positionals returns the positional names in declaration order.
func (p *Parser) Positionals() []string {
	out := make([]string, len(p.positionals))
	copy(out, p.positionals)
	return out
}

// FlagUsages renders the usage text of every visible option.
func (p *Parser) FlagUsages() string {
	return p.flags.FlagUsages()
}

func isOptionString(name string) bool {
	return len(name) > 1 && name[0] == '-'
}

func isShort(name string) bool {
	return len(name) == 2 && name[1] != '-'
}

func conflictError(names []string, conflicting string) error {
	return fmt.Errorf("argument %s: conflicting option string: %s", strings.Join(names, "/"), conflicting)
}

// present returns the keyword when it was passed with a non-null value.
func present(kw map[string]Keyword, name string) (Keyword, bool) {
	k, ok := kw[name]
	if !ok || k.Null {
		return Keyword{}, false
	}
	return k, true
}

func has(kw map[string]Keyword, name string) bool {
	_, ok := present(kw, name)
	return ok
}

func text(kw map[string]Keyword, name string) string {
	k, _ := present(kw, name)
	return k.Text
}

func noOptDefault(kw map[string]Keyword) string {
	switch text(kw, "action") {
	case "store_true", "help", "version":
		return "true"
	case "store_false":
		return "false"
	case "count":
		return "+1"
	case "store_const", "append_const":
		return text(kw, "const")
	}
	return ""
}
