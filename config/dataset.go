package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/tessellated-io/workshop/log"
	"github.com/tessellated-io/workshop/workshop"
	"gopkg.in/yaml.v2"
)

// ErrDatasetNotFound is returned by LoadDataset when nothing exists at the path.
var ErrDatasetNotFound = errors.New("dataset file not found")

// Dataset is the input for every exercise, as stored on disk.
type Dataset struct {
	Numbers    []float64            `yaml:"numbers" comment:"Input to tripleAll"`
	People     []workshop.Person    `yaml:"people" comment:"Input to upperCaseNames"`
	Users      []workshop.User      `yaml:"users" comment:"Input to userLinks"`
	Applicants []workshop.Applicant `yaml:"applicants" comment:"Input to getApplicantEmails (advanced course and 18 or older)"`
	Objects    []workshop.Object    `yaml:"objects" comment:"Input to mergeObjects (later keys win)"`
}

// DefaultDataset returns the sample data the workshop is taught with.
func DefaultDataset() *Dataset {
	return &Dataset{
		Numbers: []float64{1, 2, 3, 4, 5},
		People: []workshop.Person{
			{Name: "Bob"},
			{Name: "joe"},
			{Name: "emily"},
		},
		Users: []workshop.User{
			{Email: "bob@bob.com", Username: "bobsled99", Age: 30},
			{Email: "joe@woohoo.com", Username: "joemamma", Age: 22},
			{Email: "sierra@coldmail.com", Username: "sierramyst", Age: 24},
			{Email: "test@test.com", Username: "test", Age: 24},
		},
		Applicants: []workshop.Applicant{
			{Email: "bob@bob.com", Name: "Bob", Age: 30, AdvancedJSCourse: true},
			{Email: "joe@woohoo.com", Name: "Joe", Age: 22, AdvancedJSCourse: false},
			{Email: "sierra@coldmail.com", Name: "Sierra", Age: 24, AdvancedJSCourse: true},
			{Email: "Kevin@mswin.com", Name: "Kevin", Age: 17, AdvancedJSCourse: true},
		},
		Objects: []workshop.Object{
			{"a": 1},
			{"b": 2},
			{"c": 3, "d": 4},
		},
	}
}

// LoadDataset reads and decodes the dataset at path, which may start with "~".
func LoadDataset(path string) (*Dataset, error) {
	exists, err := FileExists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
	}

	expanded, err := ExpandHomeDir(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	return ParseDataset(data)
}

// ParseDataset decodes YAML. Missing sections decode as empty.
func ParseDataset(data []byte) (*Dataset, error) {
	dataset := &Dataset{}
	if err := yaml.UnmarshalStrict(data, dataset); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return dataset, nil
}

// WriteDatasetWithComments writes dataset as commented YAML, creating parent directories as needed.
// An existing file is left untouched.
func WriteDatasetWithComments(dataset *Dataset, header string, filename string, logger *log.Logger) error {
	fileData, err := addCommentsToYaml(dataset, header)
	if err != nil {
		return err
	}

	if err := CreateDirectoryIfNeeded(filepath.Dir(filename), logger); err != nil {
		return err
	}

	return SafeWrite(filename, fileData, logger)
}

// addCommentsToYaml places each top level field's `comment` tag above its key.
func addCommentsToYaml(value interface{}, header string) ([]byte, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return nil, err
	}

	var result strings.Builder
	if header != "" {
		result.WriteString("# " + header + "\n")
	}

	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	yamlStr := string(data)
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		yamlTag := field.Tag.Get("yaml")
		comment := field.Tag.Get("comment")

		// Top level keys only ever start a line
		lineStart := topLevelKeyIndex(yamlStr, yamlTag)
		if lineStart < 0 {
			continue
		}

		lineEnd := strings.Index(yamlStr[lineStart:], "\n")
		if lineEnd < 0 {
			lineEnd = len(yamlStr)
		} else {
			lineEnd += lineStart
		}

		result.WriteString(yamlStr[:lineStart])
		if comment != "" {
			result.WriteString("\n# " + comment + "\n")
		}
		result.WriteString(yamlStr[lineStart:lineEnd])
		yamlStr = yamlStr[lineEnd:]
	}

	result.WriteString(yamlStr)
	return []byte(result.String()), nil
}

func topLevelKeyIndex(yamlStr, key string) int {
	if strings.HasPrefix(yamlStr, key+":") {
		return 0
	}
	idx := strings.Index(yamlStr, "\n"+key+":")
	if idx < 0 {
		return -1
	}
	return idx + 1
}
