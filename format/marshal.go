package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/aosc-dev/go-apml/eval"
)

// Marshal renders an evaluated environment in the given format.  Env
// output is one KEY=value line per binding, arrays parenthesized; JSON
// and YAML render a mapping of names to strings or string arrays.  All
// three sort by name.
func Marshal(env eval.Env, f Format) ([]byte, error) {
	switch f {
	case EnvFormat:
		var b bytes.Buffer
		for _, name := range env.Names() {
			v := env[name]
			if v.Kind == eval.ArrayKind {
				fmt.Fprintf(&b, "%s=(%s)\n", name, strings.Join(v.Arr, " "))
			} else {
				fmt.Fprintf(&b, "%s=%s\n", name, v.Str)
			}
		}
		return b.Bytes(), nil
	case JSONFormat:
		d, err := json.MarshalIndent(envAny(env), "", "  ")
		if err != nil {
			return nil, err
		}
		return append(d, '\n'), nil
	case YAMLFormat:
		return yaml.Marshal(envAny(env))
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}

func envAny(env eval.Env) map[string]any {
	m := make(map[string]any, len(env))
	for name, v := range env {
		if v.Kind == eval.ArrayKind {
			elems := v.Arr
			if elems == nil {
				elems = []string{}
			}
			m[name] = elems
		} else {
			m[name] = v.Str
		}
	}
	return m
}
