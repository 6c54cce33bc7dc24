// Package schema publishes the JSON Schema of a site definition and validates
// raw site documents against it.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	jsv "github.com/santhosh-tekuri/jsonschema/v5"

	derrors "github.com/echolabx/docsite/internal/foundation/errors"
	"github.com/echolabx/docsite/internal/nav"
	"github.com/echolabx/docsite/internal/site"
)

const (
	schemaID      = "https://echolabx.github.io/docsite/site.schema.json"
	entryDefName  = "NavEntry"
	groupDefName  = "NavGroup"
	itemDefName   = "NavItem"
	resourceName  = "site.schema.json"
	sidebarPrefix = "#/$defs/"
)

var entriesType = reflect.TypeOf(nav.Entries(nil))

// Reflect builds the JSON Schema for site.Config.
func Reflect() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		FieldNameTag:   "json",
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == entriesType {
				return &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Ref: sidebarPrefix + entryDefName}}
			}
			return nil
		},
	}
	s := r.Reflect(&site.Config{})
	s.ID = schemaID
	s.Title = "Documentation site definition"
	s.Description = "Branding, head injections, social links and sidebar navigation of a Starlight site."
	s.Required = []string{"title"}
	if s.Definitions == nil {
		s.Definitions = jsonschema.Definitions{}
	}
	for name, def := range navDefinitions() {
		s.Definitions[name] = def
	}
	return s
}

func navDefinitions() jsonschema.Definitions {
	ref := func(name string) *jsonschema.Schema { return &jsonschema.Schema{Ref: sidebarPrefix + name} }
	minOne := uint64(1)

	item := &jsonschema.Schema{
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		Required:             []string{"label", "link"},
		AdditionalProperties: jsonschema.FalseSchema,
	}
	item.Properties.Set("label", &jsonschema.Schema{Type: "string"})
	item.Properties.Set("link", &jsonschema.Schema{Type: "string", MinLength: &minOne})

	autogen := &jsonschema.Schema{
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		Required:             []string{"directory"},
		AdditionalProperties: jsonschema.FalseSchema,
	}
	autogen.Properties.Set("directory", &jsonschema.Schema{Type: "string"})
	autogen.Properties.Set("collapsed", &jsonschema.Schema{Type: "boolean"})

	group := &jsonschema.Schema{
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		Required:             []string{"label"},
		AdditionalProperties: jsonschema.FalseSchema,
		AnyOf: []*jsonschema.Schema{
			{Required: []string{"items"}},
			{Required: []string{"autogenerate"}},
		},
	}
	group.Properties.Set("label", &jsonschema.Schema{Type: "string"})
	group.Properties.Set("items", &jsonschema.Schema{Type: "array", Items: ref(entryDefName)})
	group.Properties.Set("collapsed", &jsonschema.Schema{Type: "boolean"})
	group.Properties.Set("autogenerate", autogen)

	return jsonschema.Definitions{
		entryDefName: {OneOf: []*jsonschema.Schema{ref(groupDefName), ref(itemDefName)}},
		groupDefName: group,
		itemDefName:  item,
	}
}

// JSON returns the indented schema document.
func JSON() ([]byte, error) {
	data, err := json.MarshalIndent(Reflect(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

// Validator validates site documents against the reflected schema.
type Validator struct {
	schema *jsv.Schema
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
	defaultErr       error
)

// Default returns a process-wide validator, compiling the schema on first use.
func Default() (*Validator, error) {
	defaultOnce.Do(func() { defaultValidator, defaultErr = NewValidator() })
	return defaultValidator, defaultErr
}

// NewValidator compiles the site schema.
func NewValidator() (*Validator, error) {
	data, err := JSON()
	if err != nil {
		return nil, err
	}
	compiler := jsv.NewCompiler()
	compiler.Draft = jsv.Draft2020
	if err := compiler.AddResource(resourceName, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(resourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

// Validate checks doc, a value decoded from JSON (maps, slices, strings, float64, bool, nil).
func (v *Validator) Validate(doc any) error {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}
	var messages []string
	if verr, ok := err.(*jsv.ValidationError); ok {
		collectErrors(verr, &messages)
	}
	if len(messages) == 0 {
		messages = append(messages, err.Error())
	}
	return derrors.WrapError(err, derrors.CategoryValidation, "site definition does not match schema").
		WithContext("violations", strings.Join(messages, "; ")).
		Build()
}

// ValidateBytes decodes JSON data and validates it.
func (v *Validator) ValidateBytes(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return derrors.WrapError(err, derrors.CategoryValidation, "site definition is not valid JSON").Build()
	}
	return v.Validate(doc)
}

// collectErrors flattens leaf validation errors into "location: message" lines.
func collectErrors(err *jsv.ValidationError, messages *[]string) {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*messages = append(*messages, fmt.Sprintf("%s: %s", loc, err.Message))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, messages)
	}
}
