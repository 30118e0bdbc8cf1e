// Package config loads the optional settings file. Running with no settings
// file at all is the normal case and yields the default layout.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the resolved tool configuration. Paths are relative to the app
// root.
type Config struct {
	// ReportDir is where the report files are written.
	ReportDir string
	// TableDirs is the ordered list of directories searched for each table;
	// first match wins.
	TableDirs []string
	// IndexWorkbook controls whether index.xlsx is written alongside the CSVs.
	IndexWorkbook bool
}

// Default returns the configuration matching the fixed layout used when no
// settings file exists: tables in the root or ztable/, reports in drop_chance/.
func Default() Config {
	return Config{
		ReportDir:     "drop_chance",
		TableDirs:     []string{".", "ztable"},
		IndexWorkbook: true,
	}
}

type fileConfig struct {
	ReportDir     string   `yaml:"report_dir"`
	TableDirs     []string `yaml:"table_dirs"`
	IndexWorkbook *bool    `yaml:"index_workbook"`
}

func (c *fileConfig) UnmarshalYAML(value *yaml.Node) error {
	if value != nil && value.Kind == yaml.MappingNode {
		allowed := map[string]struct{}{
			"report_dir":     {},
			"table_dirs":     {},
			"index_workbook": {},
		}

		for i := 0; i+1 < len(value.Content); i += 2 {
			k := value.Content[i]
			if k.Kind != yaml.ScalarNode {
				continue
			}
			if _, ok := allowed[k.Value]; !ok {
				return fmt.Errorf("config: unsupported key %q", k.Value)
			}
		}
	}

	// Keep default decoding; this exists only to reject unknown keys.
	type raw fileConfig
	var tmp raw
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*c = fileConfig(tmp)
	return nil
}

// Load reads the settings file at path. A missing file is not an error; the
// defaults are returned unchanged. Present-but-invalid settings are fatal.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.ReportDir != "" {
		cfg.ReportDir = fc.ReportDir
	}
	if len(fc.TableDirs) > 0 {
		cfg.TableDirs = fc.TableDirs
	}
	if fc.IndexWorkbook != nil {
		cfg.IndexWorkbook = *fc.IndexWorkbook
	}
	return cfg, nil
}
