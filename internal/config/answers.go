package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pixel2html/p2h/internal/collector"
)

// AnswersFile is the YAML shape of a pre-supplied answers file. Absent keys
// stay nil and are asked interactively.
type AnswersFile struct {
	ProjectName       *string  `yaml:"project_name"`
	PageCount         *int     `yaml:"page_count"`
	ProjectType       *string  `yaml:"project_type"`
	CSSPreprocessor   *string  `yaml:"css_preprocessor"`
	FrontEndFramework *string  `yaml:"front_end_framework"`
	JQuery            *bool    `yaml:"jquery"`
	JSModules         []string `yaml:"js_modules"`
}

// Presets converts the file into collector presets.
func (f AnswersFile) Presets() collector.Presets {
	p := collector.Presets{
		PageCount: f.PageCount,
		JQuery:    f.JQuery,
	}
	p.ProjectName = nonBlank(f.ProjectName)
	p.ProjectType = nonBlank(f.ProjectType)
	p.Preprocessor = nonBlank(f.CSSPreprocessor)
	p.Framework = nonBlank(f.FrontEndFramework)
	if f.JSModules != nil {
		p.Modules = append([]string{}, f.JSModules...)
		p.ModulesSet = true
	}
	return p
}

// LoadAnswers reads an answers file. Unlike settings, the file must exist.
func LoadAnswers(path string) (collector.Presets, error) {
	var f AnswersFile
	found, err := loadYAMLFile(filepath.Dir(path), filepath.Base(path), &f)
	if err != nil {
		return collector.Presets{}, err
	}
	if !found {
		return collector.Presets{}, fmt.Errorf("%w: %s", ErrAnswersNotFound, path)
	}
	return f.Presets(), nil
}

// loadYAMLFile reads and strictly decodes a YAML file into target.
// Returns (false, nil) if the file does not exist.
func loadYAMLFile(dir, filename string, target any) (bool, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("parse %s: %w: %v", filename, ErrInvalidYAML, err)
	}

	return true, nil
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	return collector.String(*s)
}
