package vizconfig

import (
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Document is the portable form of a set of stored defaults, as written by
// "prefs export" and read by "prefs import".
type Document struct {
	Namespace  string            `yaml:"namespace"`
	Properties map[string]string `yaml:"properties"`
}

// Export captures every persistable property of s in its text encoding.
func Export(s *Store, namespace string) (Document, error) {
	doc := Document{Namespace: namespace, Properties: make(map[string]string)}
	for _, name := range s.Names() {
		v := s.values[name]
		if !Persisted(v.kind) {
			continue
		}
		text, err := EncodeValue(v)
		if err != nil {
			return Document{}, fmt.Errorf("exporting %s: %w", name, err)
		}
		doc.Properties[name] = text
	}
	return doc, nil
}

// ReadDocument decodes a YAML document.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parsing document: %w", err)
	}
	return doc, nil
}

// Write encodes d as YAML.
func (d Document) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return enc.Close()
}

// Apply validates every entry against its property's built-in kind and
// then writes them all to sink. Nothing is written if any entry is invalid.
// It returns the number of properties written.
func (d Document) Apply(sink Sink) (int, error) {
	names := make([]string, 0, len(d.Properties))
	for n := range d.Properties {
		names = append(names, n)
	}
	slices.Sort(names)

	values := make([]Value, len(names))
	for i, n := range names {
		def, ok := defs[n]
		if !ok {
			return 0, fmt.Errorf("importing %s: %w", n, notAvailable(n))
		}
		if !Persisted(def.value.kind) {
			return 0, fmt.Errorf("importing %s: %s values are not persisted", n, def.value.kind)
		}
		v, err := DecodeValue(n, def.value.kind, d.Properties[n])
		if err != nil {
			return 0, fmt.Errorf("importing %s: %w", n, err)
		}
		values[i] = v
	}

	for i, n := range names {
		if err := PersistValue(sink, n, values[i]); err != nil {
			return i, err
		}
	}
	return len(names), nil
}
