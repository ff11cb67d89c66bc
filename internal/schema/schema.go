// Package schema holds the validation primitives shared by the Docs and
// Slides request payloads: strict JSON decoding, integer coercion rules,
// object ID constraints, and the text Range model.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"

	"github.com/joelanford/mcp/workspace-sim/internal/apierr"
)

// Decode unmarshals raw into v, rejecting unknown fields at any nesting
// level. Failures come back as Validation errors.
func Decode(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apierr.Validation("%s", err.Error())
	}
	return nil
}

// Int is an integer field that tolerates whole-number floats on input.
// 2 and 2.0 decode to 2; 2.1 and non-numeric values are rejected.
type Int int

func (n *Int) UnmarshalJSON(data []byte) error {
	// json.Unmarshal leaves the target untouched on null, so it would
	// pass the float decode below.
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("value null is not a number")
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("value %s is not a number", string(data))
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("value %s is not an integer", string(data))
	}
	*n = Int(f)
	return nil
}

func (n Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(n))
}

// IntPtr is a convenience for building optional Int fields in tests.
func IntPtr(v int) *Int {
	n := Int(v)
	return &n
}

var objectIDRe = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_:\-]*$`)

// CheckObjectID enforces the Slides object ID rule for caller-supplied IDs:
// 5 to 50 characters, starting with a word character, then word characters,
// colons, or hyphens.
func CheckObjectID(id string) error {
	if len(id) < 5 || len(id) > 50 {
		return apierr.Validation("objectId %q must be between 5 and 50 characters", id)
	}
	if !objectIDRe.MatchString(id) {
		return apierr.Validation("objectId %q contains invalid characters", id)
	}
	return nil
}

type RangeType string

const (
	RangeTypeUnspecified RangeType = "RANGE_TYPE_UNSPECIFIED"
	RangeFixed           RangeType = "FIXED_RANGE"
	RangeFromStartIndex  RangeType = "FROM_START_INDEX"
	RangeAll             RangeType = "ALL"
)

// Range selects a span of text. Which indices must be present depends on
// Type.
type Range struct {
	StartIndex *Int      `json:"startIndex,omitempty"`
	EndIndex   *Int      `json:"endIndex,omitempty"`
	Type       RangeType `json:"type"`
}

func (r *Range) Validate() error {
	switch r.Type {
	case RangeTypeUnspecified:
		return apierr.Validation("RangeType must not be RANGE_TYPE_UNSPECIFIED.")
	case RangeFixed:
		if r.StartIndex == nil || r.EndIndex == nil {
			return apierr.Validation("Both startIndex and endIndex must be specified for FIXED_RANGE.")
		}
	case RangeFromStartIndex:
		if r.StartIndex == nil {
			return apierr.Validation("startIndex must be specified for FROM_START_INDEX.")
		}
		if r.EndIndex != nil {
			return apierr.Validation("endIndex must not be specified for FROM_START_INDEX.")
		}
	case RangeAll:
		if r.StartIndex != nil || r.EndIndex != nil {
			return apierr.Validation("Neither startIndex nor endIndex may be specified for ALL.")
		}
	default:
		return apierr.Validation("unknown range type %q", string(r.Type))
	}
	return nil
}

// Resolve returns the concrete [start, end) bounds of r over text of the
// given length. Validate must have passed first.
func (r *Range) Resolve(length int) (int, int) {
	switch r.Type {
	case RangeFixed:
		return int(*r.StartIndex), int(*r.EndIndex)
	case RangeFromStartIndex:
		return int(*r.StartIndex), length
	default: // ALL
		return 0, length
	}
}
