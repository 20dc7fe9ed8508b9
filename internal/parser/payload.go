package parser

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// unwrapPayload reduces a raw event payload to a keyed structure.
//
// Accepted shapes:
//   - a JSON object
//   - a 2-element array ["eventName", payload] where payload is either an
//     object or a JSON-encoded string of one
//   - a 1-element array holding the payload directly
//
// Anything else yields nil.
func unwrapPayload(raw []byte) map[string]json.RawMessage {
	raw = []byte(strings.TrimSpace(string(raw)))
	if len(raw) == 0 {
		return nil
	}

	payload := json.RawMessage(raw)

	if payload[0] == '[' {
		var elems []json.RawMessage
		if err := json.Unmarshal(payload, &elems); err != nil || len(elems) == 0 {
			return nil
		}

		if len(elems) >= 2 {
			payload = elems[1]
			// Second element may be a JSON-encoded string of the real payload.
			var inner string
			if err := json.Unmarshal(payload, &inner); err == nil {
				payload = json.RawMessage(inner)
			}
		} else {
			payload = elems[0]
		}
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil
	}
	return data
}

// parsePrice decodes a JSON number or string as a price. Strings may use a
// comma as the decimal separator.
func parsePrice(raw json.RawMessage) (float64, bool) {
	// json.Unmarshal treats null as a no-op, which would read as price 0.
	if string(raw) == "null" {
		return 0, false
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return num, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(s), ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// validPrice reports whether v is a usable price: finite and strictly positive.
func validPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
