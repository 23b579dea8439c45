package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/xivtypes/internal/log"
)

// ErrUnknownKey is returned by SaveValue for keys Config does not define.
var ErrUnknownKey = errors.New("unknown config key")

// Keys lists the settable config keys in file order.
func Keys() []string {
	return []string{"format", "color", "debug", "log_file", "log_level"}
}

// SaveValue sets a single top-level key in the config file.
// This preserves comments and formatting in other sections by using yaml.Node.
// The resulting configuration is validated before anything is written.
func SaveValue(configPath, key, value string) error {
	if !isKey(key) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	// Read existing file content
	data, err := os.ReadFile(configPath) //nolint:gosec // G304: config path comes from the user
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	// Parse into yaml.Node to preserve comments
	var doc yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	valueNode := &yaml.Node{Kind: yaml.ScalarNode, Value: value}
	if key == "debug" {
		valueNode.Tag = "!!bool"
	}

	if doc.Kind == 0 {
		// Empty or new file - create document structure
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{Kind: yaml.MappingNode},
			},
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level of %s is not a mapping", configPath)
	}

	// Find and replace the key, or append it
	root := doc.Content[0]
	found := false
	for i := 0; i < len(root.Content)-1; i += 2 {
		if root.Content[i].Value == key {
			valueNode.LineComment = root.Content[i+1].LineComment
			root.Content[i+1] = valueNode
			found = true
			break
		}
	}
	if !found {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			valueNode,
		)
	}

	// Decode the merged document so an invalid value never reaches disk
	cfg := Defaults()
	if err := doc.Decode(&cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Marshal back to YAML
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	if err := os.WriteFile(configPath, buf.Bytes(), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to save config", err, "path", configPath)
		return fmt.Errorf("writing config: %w", err)
	}

	log.Debug(log.CatConfig, "Saved config value", "path", configPath, "key", key)
	return nil
}

func isKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}
