package query

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type queryDocument struct {
	Queries []Query `yaml:"queries"`
}

type resultDocument struct {
	Results []Result `yaml:"results"`
}

// ReadYAML decodes a document with a top-level "queries" list. An empty
// stream yields no queries. Unknown keys are rejected.
func ReadYAML(r io.Reader) ([]Query, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc queryDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []Query{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if doc.Queries == nil {
		doc.Queries = []Query{}
	}

	return doc.Queries, nil
}

// WriteYAML encodes qs under a top-level "queries" key.
func WriteYAML(w io.Writer, qs []Query) error {
	return encodeYAML(w, queryDocument{Queries: qs})
}

// WriteResultsYAML encodes results under a top-level "results" key.
func WriteResultsYAML(w io.Writer, results []Result) error {
	return encodeYAML(w, resultDocument{Results: results})
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
