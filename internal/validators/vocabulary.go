package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-vocab-trainer/models"
)

// Field names accepted by [VocabularyValidator.Validate] to restrict
// validation to a subset of fields.
const (
	FieldUsername       = "username"
	FieldPassword       = "password"
	FieldOwner          = "owner"
	FieldDictionaryName = "dictionary_name"
	FieldDictionaryID   = "dictionary"
	FieldWordID         = "id"
	FieldSourceText     = "word_rus"
	FieldTargetText     = "word_eng"
)

// VocabularyValidator validates credentials, dictionaries and words.
// Value and pointer forms of every model are accepted.
type VocabularyValidator struct{}

func NewVocabularyValidator() Validator {
	return &VocabularyValidator{}
}

func (v *VocabularyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.NewDictionaryRequest:
		return v.validateNewDictionary(value, fields...)
	case *models.NewDictionaryRequest:
		return v.validateNewDictionary(*value, fields...)

	case models.NewWordRequest:
		return v.validateWord(models.Word{DictionaryID: value.DictionaryID, SourceText: value.SourceText, TargetText: value.TargetText},
			defaultFields(fields, FieldDictionaryID, FieldSourceText, FieldTargetText)...)
	case *models.NewWordRequest:
		return v.Validate(ctx, *value, fields...)

	case models.Word:
		return v.validateWord(value, defaultFields(fields, FieldWordID, FieldDictionaryID, FieldSourceText, FieldTargetText)...)
	case *models.Word:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *VocabularyValidator) validateCredentials(c models.Credentials, fields ...string) error {
	for _, f := range defaultFields(fields, FieldUsername, FieldPassword) {
		switch f {
		case FieldUsername:
			if blank(c.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *VocabularyValidator) validateNewDictionary(d models.NewDictionaryRequest, fields ...string) error {
	for _, f := range defaultFields(fields, FieldOwner, FieldDictionaryName) {
		switch f {
		case FieldOwner:
			if d.Owner <= 0 {
				return ErrInvalidOwner
			}
		case FieldDictionaryName:
			if blank(d.Name) {
				return ErrEmptyDictionaryName
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *VocabularyValidator) validateWord(w models.Word, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldWordID:
			if w.ID <= 0 {
				return ErrInvalidWordID
			}
		case FieldDictionaryID:
			if w.DictionaryID <= 0 {
				return ErrInvalidDictionaryID
			}
		case FieldSourceText:
			if blank(w.SourceText) {
				return ErrEmptySourceText
			}
		case FieldTargetText:
			if blank(w.TargetText) {
				return ErrEmptyTargetText
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}
