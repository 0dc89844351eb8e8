package config

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// parseResource reads a resource into a flat key/value map, picking the
// format from the resource name.
func parseResource(name string, r io.Reader) (map[string]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrResourceUnreadable, err.Error())
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return parseProperties(data)
	}
}

func parseProperties(data []byte) (map[string]string, error) {
	loader := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	p, err := loader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrResourceUnreadable, err.Error())
	}
	return p.Map(), nil
}

func parseYAML(data []byte) (map[string]string, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrResourceUnreadable, err.Error())
	}

	out := make(map[string]string)
	flatten("", doc, out)
	return out, nil
}

// flatten turns nested mappings into dotted keys. A mapping that also
// needs a value of its own can carry it under the "_" key.
func flatten(prefix string, node interface{}, out map[string]string) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, child := range v {
			key := k
			if k == "_" {
				key = ""
			}
			flatten(joinKey(prefix, key), child, out)
		}
	case nil:
		// an empty YAML value sets nothing
	case string:
		out[prefix] = v
	case bool:
		out[prefix] = strconv.FormatBool(v)
	default:
		out[prefix] = fmt.Sprint(v)
	}
}

func joinKey(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	default:
		return prefix + "." + key
	}
}
