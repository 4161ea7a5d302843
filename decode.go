package gopt

import (
	"github.com/mitchellh/mapstructure"
)

// Field attaches a map key to a parser result so Record can assemble a
// decodable document out of several options.
func Field(key string, p *Parser) *Parser {
	return Map(p, func(v any) any {
		return map[string]any{key: v}
	})
}

// Record merges the map results of Field parsers into a single document,
// later fields overriding earlier ones on key collisions.
func Record(fields ...*Parser) *Parser {
	acc := Pure(map[string]any{})
	for _, f := range fields {
		acc = mult(acc, f, func(l, r any) any {
			m := map[string]any{}
			for k, v := range l.(map[string]any) {
				m[k] = v
			}
			for k, v := range r.(map[string]any) {
				m[k] = v
			}
			return m
		})
	}
	return acc
}

// Decode unpacks a parsed document into target honoring gopt struct tags.
func Decode(doc, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "gopt",
		Result:  target,
	})
	if err != nil {
		return err
	}
	return dec.Decode(doc)
}
