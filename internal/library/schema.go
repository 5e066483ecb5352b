package library

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema resource locations. They are only used as compiler keys and are never fetched.
const (
	listSchemaURL     = "https://aboutlibs.dev/schema/library-list.json"
	envelopeSchemaURL = "https://aboutlibs.dev/schema/library-envelope.json"
)

// listSchema describes a top-level array of library objects.
const listSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name"],
    "properties": {
      "name":        {"type": "string", "minLength": 1},
      "author":      {"type": ["array", "null"], "items": {"type": "string"}},
      "version":     {"type": ["string", "null"]},
      "licenses":    {"type": ["array", "null"], "items": {"type": "string"}},
      "website":     {"type": ["string", "null"]},
      "scm":         {"type": ["string", "null"]},
      "description": {"type": ["string", "null"]}
    }
  }
}`

// envelopeSchema describes the aboutlibraries export format.
const envelopeSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["libraries"],
  "properties": {
    "libraries": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["uniqueId", "name"],
        "properties": {
          "uniqueId":        {"type": "string", "minLength": 1},
          "name":            {"type": "string"},
          "artifactVersion": {"type": ["string", "null"]},
          "description":     {"type": ["string", "null"]},
          "website":         {"type": ["string", "null"]},
          "developers": {
            "type": ["array", "null"],
            "items": {
              "type": "object",
              "properties": {
                "name":            {"type": ["string", "null"]},
                "organisationUrl": {"type": ["string", "null"]}
              }
            }
          },
          "scm": {
            "type": ["object", "null"],
            "properties": {"url": {"type": ["string", "null"]}}
          },
          "licenses": {"type": ["array", "null"], "items": {"type": "string"}}
        }
      }
    },
    "licenses": {"type": ["object", "null"]}
  }
}`

type compiledSchemas struct {
	list     *jsonschema.Schema
	envelope *jsonschema.Schema
}

//nolint:gochecknoglobals // Schemas are compiled once per process.
var schemas = sync.OnceValues(compileSchemas)

func compileSchemas() (compiledSchemas, error) {
	c := jsonschema.NewCompiler()
	for url, src := range map[string]string{
		listSchemaURL:     listSchema,
		envelopeSchemaURL: envelopeSchema,
	} {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
		if err != nil {
			return compiledSchemas{}, fmt.Errorf("decoding schema %s: %w", url, err)
		}
		if err = c.AddResource(url, doc); err != nil {
			return compiledSchemas{}, fmt.Errorf("adding schema %s: %w", url, err)
		}
	}

	list, err := c.Compile(listSchemaURL)
	if err != nil {
		return compiledSchemas{}, fmt.Errorf("compiling list schema: %w", err)
	}
	envelope, err := c.Compile(envelopeSchemaURL)
	if err != nil {
		return compiledSchemas{}, fmt.Errorf("compiling envelope schema: %w", err)
	}
	return compiledSchemas{list: list, envelope: envelope}, nil
}

// instancePointer returns the JSON pointer of the deepest first cause of a validation error.
func instancePointer(err error) string {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return ""
	}
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	return "/" + strings.Join(verr.InstanceLocation, "/")
}
