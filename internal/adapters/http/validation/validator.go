// Package validation binds character request bodies and validates them
// against the operation they are sent to. Binding records per-field decode
// failures; Validate turns those, the payload's shape rules, and the
// identifier rules for the operation into a single problem response.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/character-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/character-service/internal/domain/character"
)

// Problem messages.
const (
	MsgLegacyIdentifier  = "Legacy identifier payloads are not supported; send 'id' as a string value."
	MsgPayloadInvalid    = "Payload validation failed"
	MsgIDRequired        = "The 'id' field is required for this operation."
	MsgIDInvalid         = "The 'id' field must be a valid GUID."
	MsgIDMismatch        = "The 'id' field must match the route identifier."
	MsgIDNotAllowed      = "The 'id' field is assigned by the server and must not be supplied."
	MsgRouteIDInvalid    = "The route identifier must be a valid GUID."
	msgNameRequired      = "The 'name' field is required."
	msgFieldInvalidFmt   = "The '%s' field is invalid."
	conversionMarkerText = "could not be converted"
)

// Context describes what the target operation expects of the identifier.
type Context struct {
	RequireIdentifier            bool
	EnsureRouteIdentifierMatches bool
	RejectIdentifier             bool
	RouteIdentifier              character.ID
}

// ForCreate is the context for POST: the server assigns the identifier.
func ForCreate() Context {
	return Context{RejectIdentifier: true}
}

// ForUpdate is the context for PUT: the payload must repeat the route id.
func ForUpdate(routeID character.ID) Context {
	return Context{
		RequireIdentifier:            true,
		EnsureRouteIdentifierMatches: true,
		RouteIdentifier:              routeID,
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks req under vctx. fieldErrs holds what Bind recorded; it is
// extended with shape failures. A nil result means the request is valid.
func Validate(req dto.CharacterRequest, fieldErrs FieldErrors, vctx Context) *dto.ErrorResponse {
	addShapeErrors(req, &fieldErrs)
	normalizeIdentifierErrors(&fieldErrs)

	if legacyOnly(&fieldErrs) {
		return identifierProblem(MsgLegacyIdentifier)
	}
	if fieldErrs.Len() > 0 {
		return dto.NewValidationProblem(MsgPayloadInvalid, group(&fieldErrs))
	}
	return validateIdentifier(req.ID, vctx)
}

func validateIdentifier(raw string, vctx Context) *dto.ErrorResponse {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if vctx.RequireIdentifier {
			return identifierProblem(MsgIDRequired)
		}
		return nil
	}
	if vctx.RejectIdentifier {
		return identifierProblem(MsgIDNotAllowed)
	}

	id, err := character.ParseID(raw)
	if err != nil {
		return identifierProblem(MsgIDInvalid)
	}
	if vctx.EnsureRouteIdentifierMatches && id != vctx.RouteIdentifier {
		return identifierProblem(MsgIDMismatch)
	}
	return nil
}

// RouteIDProblem is the problem for a route identifier that does not parse.
func RouteIDProblem() *dto.ErrorResponse {
	return identifierProblem(MsgRouteIDInvalid)
}

func identifierProblem(msg string) *dto.ErrorResponse {
	return dto.NewValidationProblem(msg, map[string][]string{propertyID: {msg}})
}

// addShapeErrors runs the struct tag rules, skipping fields that already
// failed to bind. An unreadable body has no shape to check.
func addShapeErrors(req dto.CharacterRequest, fieldErrs *FieldErrors) {
	if fieldErrs.Has(bodyKey) {
		return
	}

	err := structValidator().Struct(req)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return
	}

	bound := make(map[string]bool)
	for _, k := range fieldErrs.Keys() {
		bound[NormalizeKey(k)] = true
	}

	for _, fe := range verrs {
		if bound[fe.Field()] {
			continue
		}
		fieldErrs.Add(pathPrefix+fe.Field(), shapeMessage(fe), fe)
	}
}

func shapeMessage(fe validator.FieldError) string {
	switch {
	case fe.Field() == propertyName && fe.Tag() == "required":
		return msgNameRequired
	case fe.Field() == propertyName && (fe.Tag() == "min" || fe.Tag() == "max"):
		return fmt.Sprintf("The 'name' field must be between %d and %d characters.", dto.NameMinLength, dto.NameMaxLength)
	case fe.Field() == propertyClass && fe.Tag() == "oneof":
		names := make([]string, 0, len(character.Classes()))
		for _, c := range character.Classes() {
			names = append(names, c.String())
		}
		return fmt.Sprintf("The 'class' field must be one of: %s.", strings.Join(names, ", "))
	default:
		return fmt.Sprintf(msgFieldInvalidFmt, fe.Field())
	}
}

// normalizeIdentifierErrors replaces JSON conversion failures on the id
// field with the legacy identifier message, so an object-shaped id reads as
// what it almost always is.
func normalizeIdentifierErrors(fieldErrs *FieldErrors) {
	for _, key := range fieldErrs.Keys() {
		if NormalizeKey(key) != propertyID {
			continue
		}
		for _, fe := range fieldErrs.Get(key) {
			if isConversionError(fe) {
				fieldErrs.Replace(key, FieldError{Message: MsgLegacyIdentifier})
				break
			}
		}
	}
}

func isConversionError(fe FieldError) bool {
	var typeErr *json.UnmarshalTypeError
	if errors.As(fe.Err, &typeErr) {
		return true
	}
	return strings.Contains(fe.Message, conversionMarkerText)
}

// legacyOnly reports whether the only failures are legacy identifier ones.
func legacyOnly(fieldErrs *FieldErrors) bool {
	if fieldErrs.Len() == 0 {
		return false
	}
	for _, key := range fieldErrs.Keys() {
		errs := fieldErrs.Get(key)
		if len(errs) == 0 {
			continue
		}
		if NormalizeKey(key) != propertyID {
			return false
		}
		for _, fe := range errs {
			if fe.Message != MsgLegacyIdentifier {
				return false
			}
		}
	}
	return true
}

// group merges failures by normalized key, keeping message order.
func group(fieldErrs *FieldErrors) map[string][]string {
	out := make(map[string][]string)
	for _, key := range fieldErrs.Keys() {
		nk := NormalizeKey(key)
		for _, fe := range fieldErrs.Get(key) {
			out[nk] = append(out[nk], fe.Message)
		}
	}
	return out
}
