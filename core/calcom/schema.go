package calcom

import (
	"fmt"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/kaptinlin/jsonschema"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const bookingsSchemaJSON = `{
  "type": "object",
  "required": ["bookings"],
  "properties": {
    "bookings": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "eventTypeId", "status", "startTime", "endTime", "attendees"],
        "properties": {
          "id": {"type": "integer"},
          "eventTypeId": {"type": ["integer", "null"]},
          "status": {"type": "string"},
          "startTime": {"type": "string"},
          "endTime": {"type": "string"},
          "attendees": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name", "email", "timeZone"],
              "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "timeZone": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

const slotsSchemaJSON = `{
  "type": "object",
  "required": ["slots"],
  "properties": {
    "slots": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["time"],
          "properties": {
            "time": {"type": "string"},
            "attendees": {"type": "integer"}
          }
        }
      }
    }
  }
}`

// schemas holds the compiled response schemas shared by the live and fixture clients.
type schemas struct {
	bookings *jsonschema.Schema
	slots    *jsonschema.Schema
}

func compileSchemas() (*schemas, error) {
	compiler := jsonschema.NewCompiler()

	bookings, err := compiler.Compile([]byte(bookingsSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("invalid bookings schema: %w", err)
	}
	slots, err := compiler.Compile([]byte(slotsSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("invalid slots schema: %w", err)
	}

	return &schemas{bookings: bookings, slots: slots}, nil
}

// decode validates body against schema, then decodes it into out.
func decode(body []byte, schema *jsonschema.Schema, out any) error {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("%w: body is not JSON: %v", ErrDataShape, err)
	}

	result := schema.Validate(doc)
	if !result.IsValid() {
		msgs := make([]string, 0, len(result.Errors))
		for field, e := range result.Errors {
			msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Message))
		}
		sort.Strings(msgs)
		return fmt.Errorf("%w: %s", ErrDataShape, strings.Join(msgs, "; "))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDataShape, err)
	}
	return nil
}

func decodeBookings(s *schemas, body []byte) ([]Booking, error) {
	var resp bookingsResponse
	if err := decode(body, s.bookings, &resp); err != nil {
		return nil, fmt.Errorf("bookings: %w", err)
	}
	return resp.Bookings, nil
}

func decodeSlots(s *schemas, body []byte) (Availability, error) {
	var resp slotsResponse
	if err := decode(body, s.slots, &resp); err != nil {
		return nil, fmt.Errorf("slots: %w", err)
	}
	return resp.Slots, nil
}
