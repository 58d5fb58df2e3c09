// Package seed applies declarative schema documents written in YAML.
//
// A file holds one document per scope:
//
//	scope: company
//	modules:
//	  - name: Basics
//	    fields:
//	      - key: company_size
//	        name: Company size
//	        type: number
//	      - key: tier
//	        name: Tier
//	        type: select
//	        options: [free, pro]
//
// Applying a document is idempotent. Modules are matched by name and fields
// by key; missing ones are appended, existing ones are updated in place.
// Nothing is deleted or reordered.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/dangerclosesec/catalog/internal/service"
	"gopkg.in/yaml.v3"
)

type Document struct {
	Scope   string   `yaml:"scope"`
	Modules []Module `yaml:"modules"`
}

type Module struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	Active      *bool   `yaml:"active"`
	Fields      []Field `yaml:"fields"`
}

type Field struct {
	Key         string          `yaml:"key"`
	Name        string          `yaml:"name"`
	Type        model.FieldType `yaml:"type"`
	Options     []string        `yaml:"options"`
	Required    bool            `yaml:"required"`
	Description *string         `yaml:"description"`
	Active      *bool           `yaml:"active"`
}

// Result counts what Apply changed.
type Result struct {
	ModulesCreated int
	ModulesUpdated int
	FieldsCreated  int
	FieldsUpdated  int
}

// Parse reads every document in r. Unknown keys are rejected.
func Parse(r io.Reader) ([]Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var docs []Document
	for {
		var doc Document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decoding seed document %d: %w", len(docs)+1, err)
		}
		if _, err := model.ParseScope(doc.Scope); err != nil {
			return nil, fmt.Errorf("seed document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// ScopeName returns the parsed scope of a document accepted by Parse.
func (d Document) ScopeName() model.Scope {
	scope, _ := model.ParseScope(d.Scope)
	return scope
}

// Apply creates or updates the document's modules and fields through schema.
func Apply(ctx context.Context, schema *service.SchemaService, doc Document) (Result, error) {
	var res Result

	existing, err := schema.ListModules(ctx, false)
	if err != nil {
		return res, err
	}
	byName := make(map[string]*model.Module, len(existing))
	for _, m := range existing {
		byName[strings.ToLower(strings.TrimSpace(m.Name))] = m
	}

	for _, dm := range doc.Modules {
		key := strings.ToLower(strings.TrimSpace(dm.Name))
		module, ok := byName[key]
		if !ok {
			module, err = schema.CreateModule(ctx, service.CreateModuleInput{
				Name:        dm.Name,
				Description: dm.Description,
			})
			if err != nil {
				return res, fmt.Errorf("module %q: %w", dm.Name, err)
			}
			byName[key] = module
			res.ModulesCreated++
		} else {
			res.ModulesUpdated++
		}

		if dm.Description != nil || dm.Active != nil {
			if _, err := schema.UpdateModule(ctx, module.ID, service.UpdateModuleInput{
				Description: dm.Description,
				IsActive:    dm.Active,
			}); err != nil {
				return res, fmt.Errorf("module %q: %w", dm.Name, err)
			}
		}

		created, updated, err := applyFields(ctx, schema, module, dm.Fields)
		res.FieldsCreated += created
		res.FieldsUpdated += updated
		if err != nil {
			return res, fmt.Errorf("module %q: %w", dm.Name, err)
		}
	}

	return res, nil
}

func applyFields(ctx context.Context, schema *service.SchemaService, module *model.Module, fields []Field) (created, updated int, err error) {
	existing, err := schema.ListFields(ctx, module.ID, false)
	if err != nil {
		return 0, 0, err
	}
	byKey := make(map[string]*model.Field, len(existing))
	for _, f := range existing {
		byKey[f.FieldKey] = f
	}

	for _, df := range fields {
		name := df.Name
		if strings.TrimSpace(name) == "" {
			name = df.Key
		}

		current, ok := byKey[service.NormalizeFieldKey(df.Key)]
		if !ok {
			f, err := schema.CreateField(ctx, service.CreateFieldInput{
				ModuleID:    module.ID,
				Name:        name,
				FieldKey:    df.Key,
				FieldType:   df.Type,
				Options:     df.Options,
				IsRequired:  df.Required,
				Description: df.Description,
			})
			if err != nil {
				return created, updated, fmt.Errorf("field %q: %w", df.Key, err)
			}
			byKey[f.FieldKey] = f
			created++
			if df.Active != nil && !*df.Active {
				if _, err := schema.UpdateField(ctx, f.ID, service.UpdateFieldInput{IsActive: df.Active}); err != nil {
					return created, updated, fmt.Errorf("field %q: %w", df.Key, err)
				}
			}
			continue
		}

		options := df.Options
		if _, err := schema.UpdateField(ctx, current.ID, service.UpdateFieldInput{
			Name:        &name,
			FieldType:   &df.Type,
			Options:     &options,
			IsRequired:  &df.Required,
			Description: df.Description,
			IsActive:    df.Active,
		}); err != nil {
			return created, updated, fmt.Errorf("field %q: %w", df.Key, err)
		}
		updated++
	}
	return created, updated, nil
}
