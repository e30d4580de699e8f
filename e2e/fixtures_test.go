//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates a temporary directory that doubles as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateIconSource writes empty component files under workspace/icons and
// returns that directory
func (tf *TUITestFramework) CreateIconSource(files ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	dir := filepath.Join(tf.workspace, "icons")
	for _, f := range files {
		if err := tf.AddIconFile(dir, f); err != nil {
			return "", err
		}
	}
	return dir, nil
}

// AddIconFile writes one component file below dir
func (tf *TUITestFramework) AddIconFile(dir, name string) error {
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	body := fmt.Sprintf("export default function %s() { return null }\n", name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteConfig writes the lively config file under the isolated config home
func (tf *TUITestFramework) WriteConfig(contents string) (string, error) {
	dir := filepath.Join(tf.workspace, ".config", "lively")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "config.toml")
	return path, os.WriteFile(path, []byte(contents), 0644)
}
