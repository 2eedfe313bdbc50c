package files

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/tagpick/pkg/models"
)

// ReadSettings loads settings.yaml over the defaults and validates the result
func ReadSettings() (*models.Settings, error) {
	settings := models.DefaultSettings()

	data, err := os.ReadFile(SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// WriteSettings validates and saves settings. Nil writes the defaults.
func WriteSettings(settings *models.Settings) error {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	return WriteFile(SettingsPath(), string(content))
}

// SettingKeys lists every dotted settings key, e.g. "ui.random_count"
func SettingKeys(settings *models.Settings) ([]string, error) {
	doc, err := settingsNode(settings)
	if err != nil {
		return nil, err
	}

	var keys []string
	var walk func(prefix string, node *yaml.Node)
	walk = func(prefix string, node *yaml.Node) {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if prefix != "" {
				key = prefix + "." + key
			}
			if value := node.Content[i+1]; value.Kind == yaml.MappingNode {
				walk(key, value)
			} else {
				keys = append(keys, key)
			}
		}
	}
	walk("", doc)

	sort.Strings(keys)
	return keys, nil
}

// GetSetting returns the value of a dotted settings key as text
func GetSetting(settings *models.Settings, key string) (string, error) {
	doc, err := settingsNode(settings)
	if err != nil {
		return "", err
	}

	node, err := lookup(doc, key)
	if err != nil {
		return "", err
	}
	return node.Value, nil
}

// SetSetting returns a copy of settings with key set to value.
// The result is validated; settings itself is never modified.
func SetSetting(settings *models.Settings, key, value string) (*models.Settings, error) {
	doc, err := settingsNode(settings)
	if err != nil {
		return nil, err
	}

	node, err := lookup(doc, key)
	if err != nil {
		return nil, err
	}

	// Let the YAML resolver type the new value
	node.Value = value
	node.Tag = ""
	node.Style = 0

	updated := &models.Settings{}
	if err := doc.Decode(updated); err != nil {
		return nil, fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	return updated, nil
}

func settingsNode(settings *models.Settings) (*yaml.Node, error) {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("empty settings document")
	}
	return root.Content[0], nil
}

func lookup(doc *yaml.Node, key string) (*yaml.Node, error) {
	node := doc
	for _, part := range strings.Split(key, ".") {
		if node.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("unknown setting %q", key)
		}

		var next *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == part {
				next = node.Content[i+1]
				break
			}
		}
		if next == nil {
			return nil, fmt.Errorf("unknown setting %q", key)
		}
		node = next
	}

	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("%s is a section, not a setting", key)
	}
	return node, nil
}
