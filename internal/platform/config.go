package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigNames are the filenames probed when looking for a job config.
var ConfigNames = []string{"gridsync.yaml", "gridsync.yml"}

// Job describes one reconciliation job in a config file.
type Job struct {
	// Name identifies the job in logs and output. Optional; defaults to
	// the workbook filename.
	Name string `yaml:"name"`
	// Snapshot is the CSV path or glob pattern (newest match wins).
	Snapshot string `yaml:"snapshot"`
	// Workbook is the .xlsx file to reconcile against.
	Workbook string `yaml:"workbook"`
	// Sheet selects the worksheet; empty means the first sheet.
	Sheet string `yaml:"sheet"`
	// Key names the identity column joining both sources.
	Key string `yaml:"key"`
}

// Config is the parsed gridsync.yaml job file.
type Config struct {
	Jobs []Job `yaml:"jobs"`
}

// LoadConfig reads and validates a job config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if len(cfg.Jobs) == 0 {
		return nil, fmt.Errorf("config %s defines no jobs", path)
	}

	for i := range cfg.Jobs {
		job := &cfg.Jobs[i]
		if job.Snapshot == "" {
			return nil, fmt.Errorf("job %d: snapshot is required", i)
		}
		if job.Workbook == "" {
			return nil, fmt.Errorf("job %d: workbook is required", i)
		}
		if job.Key == "" {
			return nil, fmt.Errorf("job %d: key is required", i)
		}
		if job.Name == "" {
			job.Name = filepath.Base(job.Workbook)
		}
	}

	return &cfg, nil
}

// FindConfig looks upwards from startDir for a job config file.
// Returns the path of the first match, or an error when the filesystem
// root is reached without one.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		for _, name := range ConfigNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no gridsync config found above %s", startDir)
}
