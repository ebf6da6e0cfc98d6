// Package utils contains json helpers shared by setup models.
package utils

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// TypeBasedUnmarshalJSON decodes json object, which concrete type is selected
// by its "type" field. typeMapping has to return pointers.
func TypeBasedUnmarshalJSON(
	data []byte, typeMapping map[string]func() interface{},
) (interface{}, error) {
	var raw struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	create, knownType := typeMapping[raw.Type]
	if !knownType {
		return nil, fmt.Errorf("unknown type %q", raw.Type)
	}
	value := create()
	reflectValue := reflect.ValueOf(value)
	if reflectValue.Kind() != reflect.Ptr {
		return nil, fmt.Errorf("invalid input type %T", value)
	}
	if err := json.Unmarshal(data, value); err != nil {
		return nil, err
	}
	return reflectValue.Elem().Interface(), nil
}
