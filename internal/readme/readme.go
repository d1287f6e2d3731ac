// Package readme creates, reads, and deletes README files for detected
// projects. This is consumer-side tooling: the scan engine itself never
// writes to the filesystem.
package readme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/EricBell/local-project-manager/internal/models"
)

type templateData struct {
	ProjectName string
}

// Create writes a new README.md for the project directory, templated by
// project type. It refuses to overwrite an existing README.md.
func Create(dir, name string, projectType models.ProjectType) (string, error) {
	path := filepath.Join(dir, "README.md")

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("README already exists at %s", path)
	}

	content, err := Render(name, projectType)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write README: %w", err)
	}
	return path, nil
}

// Render produces the README content for a project name and type. Types
// without a dedicated template fall back to the generic one.
func Render(name string, projectType models.ProjectType) (string, error) {
	text, ok := templates[projectType]
	if !ok {
		text = genericTemplate
	}

	tmpl, err := template.New("readme").Parse(text)
	if err != nil {
		return "", fmt.Errorf("template parse error: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{ProjectName: name}); err != nil {
		return "", fmt.Errorf("template execute error: %w", err)
	}
	return buf.String(), nil
}

// Read returns the content of the README at path.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read README: %w", err)
	}
	return string(data), nil
}

// Delete removes the README at path.
func Delete(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("README not found at %s", path)
	}
	return os.Remove(path)
}
