package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// errUnsupportedShape is reported when the document is neither an array nor an envelope.
var errUnsupportedShape = errors.New("descriptor must be an array of libraries or an object with a libraries field")

// listEntry is one element of the array descriptor form.
type listEntry struct {
	Name        string   `json:"name"`
	Author      []string `json:"author"`
	Version     string   `json:"version"`
	Licenses    []string `json:"licenses"`
	Website     string   `json:"website"`
	SCM         string   `json:"scm"`
	Description string   `json:"description"`
}

func (e listEntry) toLibrary() Library {
	return Library{
		Name:        e.Name,
		Authors:     e.Author,
		Version:     e.Version,
		Licenses:    e.Licenses,
		Website:     e.Website,
		SCM:         e.SCM,
		Description: e.Description,
	}
}

type envelopeDeveloper struct {
	Name string `json:"name"`
}

type envelopeSCM struct {
	URL string `json:"url"`
}

// envelopeEntry is one library of the aboutlibraries export format.
type envelopeEntry struct {
	UniqueID        string              `json:"uniqueId"`
	Name            string              `json:"name"`
	ArtifactVersion string              `json:"artifactVersion"`
	Description     string              `json:"description"`
	Website         string              `json:"website"`
	Developers      []envelopeDeveloper `json:"developers"`
	SCM             *envelopeSCM        `json:"scm"`
	Licenses        []string            `json:"licenses"`
}

type envelope struct {
	Libraries []envelopeEntry `json:"libraries"`
}

func (e envelopeEntry) toLibrary() Library {
	name := e.Name
	if strings.TrimSpace(name) == "" {
		name = e.UniqueID
	}

	var authors []string
	for _, d := range e.Developers {
		if d.Name != "" {
			authors = append(authors, d.Name)
		}
	}

	lib := Library{
		Name:        name,
		Authors:     authors,
		Version:     e.ArtifactVersion,
		Licenses:    e.Licenses,
		Website:     e.Website,
		Description: e.Description,
	}
	if e.SCM != nil {
		lib.SCM = e.SCM.URL
	}
	return lib
}

// Load parses a library descriptor into an ordered sequence of records.
// Records keep document order. Any syntax or schema failure returns a
// *ParseError and a nil sequence.
func Load(data string) (Libraries, error) {
	if !json.Valid([]byte(data)) {
		var probe any
		err := json.Unmarshal([]byte(data), &probe)
		if err == nil {
			err = errors.New("malformed JSON")
		}
		return nil, &ParseError{Stage: StageSyntax, Err: err}
	}

	compiled, err := schemas()
	if err != nil {
		return nil, fmt.Errorf("preparing descriptor schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(data))
	if err != nil {
		return nil, &ParseError{Stage: StageSyntax, Err: err}
	}

	switch inst.(type) {
	case []any:
		return loadList(compiled.list, inst, data)
	case map[string]any:
		return loadEnvelope(compiled.envelope, inst, data)
	default:
		return nil, &ParseError{Stage: StageSchema, Pointer: "/", Err: errUnsupportedShape}
	}
}

func loadList(schema *jsonschema.Schema, inst any, data string) (Libraries, error) {
	if err := schema.Validate(inst); err != nil {
		return nil, &ParseError{Stage: StageSchema, Pointer: instancePointer(err), Err: err}
	}

	var entries []listEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, &ParseError{Stage: StageSchema, Err: err}
	}

	libs := make(Libraries, 0, len(entries))
	for _, e := range entries {
		libs = append(libs, e.toLibrary())
	}
	return libs, nil
}

func loadEnvelope(schema *jsonschema.Schema, inst any, data string) (Libraries, error) {
	if err := schema.Validate(inst); err != nil {
		return nil, &ParseError{Stage: StageSchema, Pointer: instancePointer(err), Err: err}
	}

	var env envelope
	if err := json.Unmarshal([]byte(data), &env); err != nil {
		return nil, &ParseError{Stage: StageSchema, Err: err}
	}

	libs := make(Libraries, 0, len(env.Libraries))
	for _, e := range env.Libraries {
		libs = append(libs, e.toLibrary())
	}
	return libs, nil
}
