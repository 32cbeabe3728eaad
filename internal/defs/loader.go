// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeFile unmarshals a JSON or YAML file depending on its extension.
func DecodeFile(path string, out any) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read definitions file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(file, out)
	default:
		err = json.Unmarshal(file, out)
	}
	if err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadEnemyCatalog reads an archetype table and validates it.
func LoadEnemyCatalog(path string) (*EnemyCatalog, error) {
	var enemyDefs []EnemyDefinition
	if err := DecodeFile(path, &enemyDefs); err != nil {
		return nil, err
	}
	catalog, err := NewEnemyCatalog(enemyDefs)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded enemy catalog", "path", path, "count", catalog.Len())
	return catalog, nil
}

// LoadArsenal reads weapon definitions and validates them.
func LoadArsenal(path string) (*Arsenal, error) {
	var weaponDefs []WeaponDefinition
	if err := DecodeFile(path, &weaponDefs); err != nil {
		return nil, err
	}
	arsenal, err := NewArsenal(weaponDefs)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded arsenal", "path", path, "count", len(arsenal.Weapons))
	return arsenal, nil
}
