package graphnode

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Registry maps entity models to their table name, derived from the struct
// name in snake case ("PairDayData" -> "pair_day_data").
type Registry struct {
	byType map[reflect.Type]string
	byName map[string]reflect.Type
}

func NewRegistry(entities ...Entity) *Registry {
	r := &Registry{
		byType: make(map[reflect.Type]string),
		byName: make(map[string]reflect.Type),
	}
	for _, ent := range entities {
		r.Register(ent)
	}
	return r
}

func (r *Registry) Register(ent Entity) {
	typ := reflect.TypeOf(ent).Elem()
	name := snakeCase(typ.Name())
	r.byType[typ] = name
	r.byName[name] = typ
}

// TableName resolves the table of a concrete entity instance.
func (r *Registry) TableName(ent Entity) (string, error) {
	typ := reflect.TypeOf(ent).Elem()
	name, ok := r.byType[typ]
	if !ok {
		return "", fmt.Errorf("entity type %q not registered", typ.Name())
	}
	return name, nil
}

// NewInstance returns a zeroed entity for a registered table name.
func (r *Registry) NewInstance(table string) (Entity, error) {
	typ, ok := r.byName[table]
	if !ok {
		return nil, fmt.Errorf("no entity registered for table %q", table)
	}
	return reflect.New(typ).Interface().(Entity), nil
}

func snakeCase(in string) string {
	var out strings.Builder
	runes := []rune(in)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && !unicode.IsUpper(runes[i+1]))) {
				out.WriteByte('_')
			}
			out.WriteRune(unicode.ToLower(r))
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
