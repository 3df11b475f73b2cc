package config

import (
	"os"

	"github.com/hamidzr/screenfix/model"
	"github.com/pkg/errors"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	yamlv3 "gopkg.in/yaml.v3"
)

// fileKeys resolves every spelling allowed in config.yaml to its key.
var fileKeys = func() map[string]model.ConfigKey {
	m := make(map[string]model.ConfigKey, len(model.ConfigKeys)*2)
	for _, key := range model.ConfigKeys {
		m[key.Name] = key
		if key.Camel != "" {
			m[key.Camel] = key
		}
	}
	return m
}()

// registerConfigKeyAliases must run after ReadInConfig so camelCase values
// already read from the file move onto the snake_case keys.
func registerConfigKeyAliases(v *viper.Viper) {
	for _, key := range model.ConfigKeys {
		if key.Camel != "" {
			v.RegisterAlias(key.Camel, key.Name)
		}
	}
}

// bindFlagKeys binds the flags cmd defines under their config keys.
func bindFlagKeys(v *viper.Viper, cmd *cobra.Command) error {
	for _, key := range model.ConfigKeys {
		flag := cmd.Flags().Lookup(key.Flag())
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key.Name, flag); err != nil {
			return errors.Wrapf(err, "bind --%s", key.Flag())
		}
	}
	return nil
}

// validateConfigFileKeys rejects keys Config does not read and settings
// spelled twice, e.g. both on_missing and onMissing. Errors carry the line.
func validateConfigFileKeys(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config file %s", path)
	}

	var doc yamlv3.Node
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return errors.Wrapf(err, "parse config file %s", path)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yamlv3.MappingNode {
		return errors.Errorf("config file %s: line %d: expected key: value pairs", path, root.Line)
	}

	first := make(map[string]*yamlv3.Node, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		node := root.Content[i]
		key, ok := fileKeys[node.Value]
		if !ok {
			return errors.Errorf("config file %s: line %d: invalid key %q%s",
				path, node.Line, node.Value, suggestKey(node.Value))
		}
		if prev, dup := first[key.Name]; dup {
			return errors.Errorf("config file %s: line %d: %q sets %q again (first set by %q on line %d)",
				path, node.Line, node.Value, key.Name, prev.Value, prev.Line)
		}
		first[key.Name] = node
	}
	return nil
}

func suggestKey(input string) string {
	names := make([]string, 0, len(model.ConfigKeys))
	for _, key := range model.ConfigKeys {
		names = append(names, key.Name)
	}
	matches := fuzzy.Find(input, names)
	if len(matches) == 0 {
		return ""
	}
	return ", did you mean " + matches[0].Str + "?"
}
