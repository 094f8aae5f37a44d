package validation

import (
	"reflect"
	"slices"
	"strings"
)

// Descriptor is the structural definition of one entity kind
type Descriptor struct {
	Title    string            `json:"title"`
	Type     string            `json:"type"`
	Fields   []FieldDescriptor `json:"fields"`
	Required []string          `json:"required"`
}

// FieldDescriptor describes one field of an entity kind
type FieldDescriptor struct {
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Required bool              `json:"required"`
	Nullable bool              `json:"nullable"`
	Enum     []string          `json:"enum,omitempty"`
	Default  *string           `json:"default,omitempty"`
	Items    *FieldDescriptor  `json:"items,omitempty"`
	Fields   []FieldDescriptor `json:"fields,omitempty"`
}

// Describe builds the descriptor of v's type from its json, validate and
// default tags. Fields whose JSON name starts with "_" are assigned by the
// store and are left out.
func Describe(v any) Descriptor {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	fields := describeFields(t)
	required := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return Descriptor{
		Title:    t.Name(),
		Type:     "object",
		Fields:   fields,
		Required: required,
	}
}

func describeFields(t reflect.Type) []FieldDescriptor {
	out := make([]FieldDescriptor, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		if !fld.IsExported() {
			continue
		}
		name := jsonName(fld)
		if name == "" || strings.HasPrefix(name, "_") {
			continue
		}

		rules := strings.Split(fld.Tag.Get("validate"), ",")
		desc := describeType(fld.Type)
		desc.Name = name
		desc.Required = slices.Contains(rules, "required")
		desc.Nullable = fld.Type.Kind() == reflect.Pointer || fld.Type.Kind() == reflect.Map
		for _, rule := range rules {
			if values, ok := strings.CutPrefix(rule, "oneof="); ok {
				desc.Enum = strings.Fields(values)
			}
		}
		if def, ok := fld.Tag.Lookup("default"); ok {
			desc.Default = &def
		}
		out = append(out, desc)
	}
	return out
}

func describeType(t reflect.Type) FieldDescriptor {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	desc := FieldDescriptor{Type: jsonKind(t)}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		items := describeType(t.Elem())
		desc.Items = &items
	case reflect.Struct:
		desc.Fields = describeFields(t)
	}
	return desc
}
