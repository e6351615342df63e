package commenttests

import (
	"github.com/tidwall/gjson"
)

// FieldSet names keys that must be present in one JSON object of a response body.
type FieldSet struct {
	// Path is the gjson path of the object to look in; empty means the top level.
	Path string
	Keys []string
}

// ShapeResult is the outcome of CheckShape. Parsed is false if the body was not a JSON
// object; otherwise Missing lists every absent key, qualified with its object's path.
type ShapeResult struct {
	Parsed  bool
	Missing []string
}

func (r ShapeResult) OK() bool {
	return r.Parsed && len(r.Missing) == 0
}

// CheckShape verifies that body is a JSON object containing every key in sets. A key counts
// as present even if its value is null. If the object named by a FieldSet's Path is absent or
// is not an object, all of that set's keys are reported missing.
func CheckShape(body []byte, sets []FieldSet) ShapeResult {
	if !gjson.ValidBytes(body) {
		return ShapeResult{}
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return ShapeResult{}
	}

	result := ShapeResult{Parsed: true}
	for _, set := range sets {
		obj := root
		prefix := ""
		if set.Path != "" {
			obj = root.Get(set.Path)
			prefix = set.Path + "."
		}
		for _, key := range set.Keys {
			if !obj.IsObject() || !obj.Get(key).Exists() {
				result.Missing = append(result.Missing, prefix+key)
			}
		}
	}
	return result
}

// isJSON reports whether body is syntactically valid JSON of any kind.
func isJSON(body []byte) bool {
	return len(body) > 0 && gjson.ValidBytes(body)
}
