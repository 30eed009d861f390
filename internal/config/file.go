package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// OutputEnvVar names the environment variable holding the destination file.
const OutputEnvVar = "ODM_OPTIONS_TMP_FILE"

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Setting keys shared by the configuration file, flags and environment.
const (
	KeyRoot      = "root"
	KeyOutput    = "output"
	KeyCanonical = "canonical"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// File is the decoded configuration file.
type File struct {
	Root      string    `hcl:"root,optional"`
	Output    string    `hcl:"output,optional"`
	Canonical bool      `hcl:"canonical,optional"`
	Log       *LogBlock `hcl:"log,block"`
}

// LogBlock is the optional log block.
type LogBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// LoadFile parses and decodes the file at path. environ is exposed to
// expressions as the env map, in os.Environ form.
func LoadFile(path string, environ []string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var file File
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(environ), &file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return &file, nil
}

// Settings returns the values the file sets, keyed like the flags.
func (f *File) Settings() map[string]any {
	settings := make(map[string]any)
	if f == nil {
		return settings
	}
	if f.Root != "" {
		settings[KeyRoot] = f.Root
	}
	if f.Output != "" {
		settings[KeyOutput] = f.Output
	}
	if f.Canonical {
		settings[KeyCanonical] = true
	}
	if f.Log != nil {
		if f.Log.Level != "" {
			settings[KeyLogLevel] = f.Log.Level
		}
		if f.Log.Format != "" {
			settings[KeyLogFormat] = f.Log.Format
		}
	}
	return settings
}

func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = cty.StringVal(value)
	}

	env := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		env = cty.MapVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
		Functions: map[string]function.Function{
			"lookup":   stdlib.LookupFunc,
			"coalesce": stdlib.CoalesceFunc,
			"lower":    stdlib.LowerFunc,
			"upper":    stdlib.UpperFunc,
		},
	}
}
