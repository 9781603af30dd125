package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen11/character-service/internal/adapters/http/dto"
)

// Messages recorded while binding.
const (
	msgEmptyBody = "A non-empty request body is required."
	msgMalformed = "The request body must be a JSON object."
	msgNotString = "The JSON value could not be converted to a string."
)

const (
	bodyKey       = "body"
	pathPrefix    = "$."
	propertyID    = "id"
	propertyName  = "name"
	propertyClass = "class"
)

// Bind decodes a character request from body. Each known property is
// decoded on its own so a bad value is recorded against that field instead
// of failing the whole payload. Property names match case-insensitively and
// the last matching property in the document wins. Unknown properties are
// ignored and null is treated as absent.
func Bind(body io.Reader) (dto.CharacterRequest, FieldErrors) {
	var (
		req  dto.CharacterRequest
		errs FieldErrors
	)

	raw, err := io.ReadAll(body)
	if err != nil {
		errs.Add(bodyKey, msgMalformed, err)
		return req, errs
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		errs.Add(bodyKey, msgEmptyBody, nil)
		return req, errs
	}

	props, err := scanObject(raw)
	if err != nil {
		errs.Add(bodyKey, msgMalformed, err)
		return req, errs
	}

	bindString(props, propertyID, &req.ID, &errs)
	bindString(props, propertyName, &req.Name, &errs)
	bindString(props, propertyClass, &req.Class, &errs)

	return req, errs
}

// property is the last occurrence of a known property, keyed by its
// spelling in the document.
type property struct {
	key   string
	value json.RawMessage
}

var (
	errNotObject    = errors.New("top-level JSON value is not an object")
	errTrailingData = errors.New("unexpected data after JSON object")
)

// scanObject walks a JSON object in document order and keeps the last
// occurrence of each known property.
func scanObject(raw []byte) (map[string]property, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	props := make(map[string]property, 3)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errNotObject
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		for _, name := range []string{propertyID, propertyName, propertyClass} {
			if strings.EqualFold(key, name) {
				props[name] = property{key: key, value: value}
			}
		}
	}

	// Closing brace, then nothing but whitespace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return props, nil
}

func bindString(props map[string]property, name string, dst *string, errs *FieldErrors) {
	p, ok := props[name]
	if !ok || bytes.Equal(bytes.TrimSpace(p.value), []byte("null")) {
		return
	}
	if err := json.Unmarshal(p.value, dst); err != nil {
		errs.Add(pathPrefix+p.key, fmt.Sprintf("%s Path: %s%s.", msgNotString, pathPrefix, p.key), err)
	}
}
