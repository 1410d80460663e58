package template

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config is the JSON-loadable template configuration: evaluation order and
// keyword-gate overrides. Loaded once at process start; templates stay
// immutable during a run.
type Config struct {
	Templates []TemplateConfig `json:"templates"`
}

type TemplateConfig struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`
}

const configSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["templates"],
  "properties": {
    "templates": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "keywords": {
            "type": "array",
            "items": {"type": "string", "minLength": 1}
          }
        }
      }
    }
  }
}`

var compiledConfigSchema = mustCompileConfigSchema()

func mustCompileConfigSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("templates.schema.json", strings.NewReader(configSchema)); err != nil {
		panic(err)
	}
	return c.MustCompile("templates.schema.json")
}

// LoadConfig reads and validates a template configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig validates raw JSON against the config schema and decodes it.
func ParseConfig(data []byte) (*Config, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode template config: %w", err)
	}
	if err := compiledConfigSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate template config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode template config: %w", err)
	}
	return &cfg, nil
}

// keywordConfigurable is implemented by templates whose gate can be
// overridden from configuration.
type keywordConfigurable interface {
	setKeywords(kw []string)
}

func (t *GenericTemplate) setKeywords(kw []string) { t.keywords = keywordGate(kw) }
func (t *LearTemplate) setKeywords(kw []string) { t.keywords = keywordGate(kw) }

// Apply reorders the registry to the config order (unlisted templates keep
// their relative order after the listed ones) and applies keyword overrides.
func (r *Registry) Apply(cfg *Config) error {
	byName := make(map[string]Template, len(r.templates))
	for _, t := range r.templates {
		byName[t.Name()] = t
	}

	ordered := make([]Template, 0, len(r.templates))
	seen := make(map[string]bool, len(cfg.Templates))
	for _, tc := range cfg.Templates {
		t, ok := byName[tc.Name]
		if !ok {
			return fmt.Errorf("template config: unknown template %q", tc.Name)
		}
		if seen[tc.Name] {
			return fmt.Errorf("template config: duplicate template %q", tc.Name)
		}
		seen[tc.Name] = true
		if len(tc.Keywords) > 0 {
			kc, ok := t.(keywordConfigurable)
			if !ok {
				return fmt.Errorf("template config: %q does not support keyword overrides", tc.Name)
			}
			kc.setKeywords(tc.Keywords)
		}
		ordered = append(ordered, t)
	}
	for _, t := range r.templates {
		if !seen[t.Name()] {
			ordered = append(ordered, t)
		}
	}
	r.templates = ordered
	return nil
}
