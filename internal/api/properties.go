package api

import (
	"errors"
	"fmt"

	"github.com/kalambet/vizprefs/internal/session"
	"github.com/kalambet/vizprefs/internal/vizconfig"
)

var errInvalidInput = errors.New("invalid input")

// Property is the wire form of a store entry. Value uses the same text
// encoding as the preferences backend.
type Property struct {
	Name  string         `json:"name"`
	Kind  vizconfig.Kind `json:"kind"`
	Value string         `json:"value"`
}

func describe(store *vizconfig.Store, name string) (Property, error) {
	v, err := store.Property(name)
	if err != nil {
		return Property{}, err
	}
	return encodeProperty(name, v)
}

func encodeProperty(name string, v vizconfig.Value) (Property, error) {
	text, err := vizconfig.EncodeValue(v)
	if err != nil {
		return Property{}, fmt.Errorf("encoding %s: %w", name, err)
	}
	return Property{Name: name, Kind: v.Kind(), Value: text}, nil
}

func defaultProperties() ([]Property, error) {
	defaults := vizconfig.Defaults()
	out := make([]Property, 0, len(defaults))
	for _, d := range defaults {
		p, err := encodeProperty(d.Name, d.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func listProperties(sess *session.Session) ([]Property, error) {
	var out []Property
	err := sess.View(func(store *vizconfig.Store) error {
		names := store.Names()
		out = make([]Property, 0, len(names))
		for _, n := range names {
			p, err := describe(store, n)
			if err != nil {
				return err
			}
			out = append(out, p)
		}
		return nil
	})
	return out, err
}

func getProperty(sess *session.Session, name string) (Property, error) {
	var p Property
	err := sess.View(func(store *vizconfig.Store) error {
		var err error
		p, err = describe(store, name)
		return err
	})
	return p, err
}

// setProperty decodes value as kindName (or, when empty, as the kind the
// property currently holds) and stores it.
func setProperty(sess *session.Session, name, kindName, value string) (Property, error) {
	if name == "" {
		return Property{}, fmt.Errorf("%w: property name is required", errInvalidInput)
	}

	var p Property
	err := sess.Update(func(store *vizconfig.Store) error {
		var kind vizconfig.Kind
		if kindName != "" {
			k, err := vizconfig.ParseKind(kindName)
			if err != nil {
				return fmt.Errorf("%w: %v", errInvalidInput, err)
			}
			kind = k
		} else {
			k, err := store.PropertyKind(name)
			if err != nil {
				return fmt.Errorf("%w: kind is required for new property %q", errInvalidInput, name)
			}
			kind = k
		}

		v, err := vizconfig.DecodeValue(name, kind, value)
		if err != nil {
			return fmt.Errorf("%w: %v", errInvalidInput, err)
		}
		store.Set(name, v)

		p, err = encodeProperty(name, v)
		return err
	})
	return p, err
}
