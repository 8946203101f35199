// Package vizconfig holds the runtime settings of a graph visualization
// session: a flat map of named, typed properties seeded from user
// preferences with built-in fallbacks.
//
// A Store does no locking of its own. Callers sharing one across
// goroutines must synchronize access themselves.
package vizconfig

import (
	"fmt"
	"slices"
)

// Source is the read side of a preferences backend. Each method returns def
// when nothing is stored under key.
type Source interface {
	String(key, def string) (string, error)
	Bool(key string, def bool) (bool, error)
	Int(key string, def int) (int, error)
	Float(key string, def float32) (float32, error)
}

// Sink is the write side of a preferences backend.
type Sink interface {
	PutString(key, val string) error
	PutBool(key string, val bool) error
	PutInt(key string, val int) error
	PutFloat(key string, val float32) error
}

// Store maps property names to values.
type Store struct {
	values map[string]Value
}

// New builds a store holding every recognized property. Each value is read
// from src under PreferenceKey(name), falling back to the built-in default.
// Stored colors, float arrays or enum names that cannot be decoded fail the
// whole construction. New never writes to src.
func New(src Source) (*Store, error) {
	s := &Store{values: make(map[string]Value, len(defs))}
	for name, d := range defs {
		v, err := load(src, name, d)
		if err != nil {
			return nil, fmt.Errorf("initializing %s: %w", name, err)
		}
		s.values[name] = v
	}
	return s, nil
}

func load(src Source, name string, d propertyDef) (Value, error) {
	key := PreferenceKey(name)
	def := d.value

	switch def.kind {
	case KindBool:
		b, err := src.Bool(key, def.boolean)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	case KindInt:
		i, err := src.Int(key, def.integer)
		if err != nil {
			return Value{}, err
		}
		return IntValue(i), nil
	case KindFloat:
		f, err := src.Float(key, def.float)
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil
	case KindColor, KindFont, KindFloatArray, KindEnum:
		fallback, err := EncodeValue(def)
		if err != nil {
			return Value{}, err
		}
		text, err := src.String(key, fallback)
		if err != nil {
			return Value{}, err
		}
		return DecodeValue(name, def.kind, text)
	}
	// Everything else lives in memory only.
	return copyValue(def), nil
}

func (s *Store) get(name string, kind Kind) (Value, error) {
	v, ok := s.values[name]
	if !ok || v.kind != kind {
		return Value{}, notAvailable(name)
	}
	return v, nil
}

func (s *Store) StringProperty(name string) (string, error) {
	v, err := s.get(name, KindString)
	return v.str, err
}

func (s *Store) IntProperty(name string) (int, error) {
	v, err := s.get(name, KindInt)
	return v.integer, err
}

func (s *Store) FloatProperty(name string) (float32, error) {
	v, err := s.get(name, KindFloat)
	return v.float, err
}

func (s *Store) BoolProperty(name string) (bool, error) {
	v, err := s.get(name, KindBool)
	return v.boolean, err
}

// FloatArrayProperty returns a copy of the stored slice.
func (s *Store) FloatArrayProperty(name string) ([]float32, error) {
	v, err := s.get(name, KindFloatArray)
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.floats), nil
}

func (s *Store) FontProperty(name string) (Font, error) {
	v, err := s.get(name, KindFont)
	return v.font, err
}

func (s *Store) ColorProperty(name string) (Color, error) {
	v, err := s.get(name, KindColor)
	return v.color, err
}

// ColumnsProperty returns a copy of the stored column list.
func (s *Store) ColumnsProperty(name string) ([]Column, error) {
	v, err := s.get(name, KindColumns)
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.columns), nil
}

// EnumProperty returns the variant stored under name when it belongs to the
// enumeration E.
func EnumProperty[E Enum](s *Store, name string) (E, error) {
	var zero E
	v, err := s.get(name, KindEnum)
	if err != nil {
		return zero, err
	}
	e, ok := v.enum.(E)
	if !ok {
		return zero, notAvailable(name)
	}
	return e, nil
}

// Property returns the stored value whatever its kind.
func (s *Store) Property(name string) (Value, error) {
	v, ok := s.values[name]
	if !ok {
		return Value{}, notAvailable(name)
	}
	return copyValue(v), nil
}

// PropertyKind returns the kind currently stored under name.
func (s *Store) PropertyKind(name string) (Kind, error) {
	v, ok := s.values[name]
	if !ok {
		return KindInvalid, notAvailable(name)
	}
	return v.kind, nil
}

// Setters overwrite unconditionally, and may change the kind stored under
// name.

func (s *Store) SetString(name, v string) { s.values[name] = StringValue(v) }

func (s *Store) SetInt(name string, v int) { s.values[name] = IntValue(v) }

func (s *Store) SetFloat(name string, v float32) { s.values[name] = FloatValue(v) }

func (s *Store) SetBool(name string, v bool) { s.values[name] = BoolValue(v) }

func (s *Store) SetFloatArray(name string, v []float32) { s.values[name] = FloatArrayValue(v) }

func (s *Store) SetFont(name string, v Font) { s.values[name] = FontValue(v) }

func (s *Store) SetColor(name string, v Color) { s.values[name] = ColorValue(v) }

func (s *Store) SetEnum(name string, v Enum) { s.values[name] = EnumValue(v) }

func (s *Store) SetColumns(name string, v []Column) { s.values[name] = ColumnsValue(v) }

// Set stores v as is.
func (s *Store) Set(name string, v Value) { s.values[name] = copyValue(v) }

// Names lists every property in the store in ascending order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.values))
	for n := range s.values {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// WriteDefaults stores the current values of the named properties as the
// defaults future stores start from. With no names, every property of a
// persistable kind is written.
func (s *Store) WriteDefaults(sink Sink, names ...string) error {
	if len(names) == 0 {
		for _, n := range s.Names() {
			if Persisted(s.values[n].kind) {
				names = append(names, n)
			}
		}
	}
	for _, n := range names {
		v, ok := s.values[n]
		if !ok {
			return notAvailable(n)
		}
		if err := PersistValue(sink, n, v); err != nil {
			return err
		}
	}
	return nil
}

// PersistValue writes v under PreferenceKey(name) in the backend's native
// encoding for its kind.
func PersistValue(sink Sink, name string, v Value) error {
	if !Persisted(v.kind) {
		return fmt.Errorf("property %s: %s values are not persisted", name, v.kind)
	}
	key := PreferenceKey(name)
	var err error
	switch v.kind {
	case KindBool:
		err = sink.PutBool(key, v.boolean)
	case KindInt:
		err = sink.PutInt(key, v.integer)
	case KindFloat:
		err = sink.PutFloat(key, v.float)
	default:
		var text string
		if text, err = EncodeValue(v); err == nil {
			err = sink.PutString(key, text)
		}
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
