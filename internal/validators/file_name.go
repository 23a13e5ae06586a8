package validators

import (
	"context"
	"path"
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set"

	"github.com/MKhiriev/go-file-drop/models"
)

// Field name constants used to restrict validation to a subset of checks.
const (
	// FieldName rejects names that could address anything other than a
	// single entry inside a storage location.
	FieldName = "name"

	// FieldExtension requires an extension that is on the allow-list.
	FieldExtension = "extension"
)

// FileNameValidator implements [Validator] for file names. It accepts
// [models.StoredFile], *[models.StoredFile] and a bare string name.
//
// Validated fields default to FieldExtension then FieldName, so a name that
// fails both is reported by its extension.
type FileNameValidator struct {
	allowed mapset.Set
}

// NewFileNameValidator constructs a FileNameValidator with the given
// extension allow-list. Extensions are written without the leading dot and
// are matched case-sensitively.
func NewFileNameValidator(allowedExtensions []string) Validator {
	allowed := mapset.NewThreadUnsafeSet()
	for _, ext := range allowedExtensions {
		allowed.Add(ext)
	}

	// read-only after construction, so the unsafe set is shared freely
	return &FileNameValidator{
		allowed: allowed,
	}
}

func (v *FileNameValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StoredFile:
		return v.validateName(ctx, value.Name, fields...)
	case *models.StoredFile:
		return v.validateName(ctx, value.Name, fields...)
	case string:
		return v.validateName(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FileNameValidator) validateName(_ context.Context, name string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExtension, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !IsSafeFileName(name) {
				return ErrInvalidFileName
			}
		case FieldExtension:
			ext, ok := Extension(name)
			if !ok {
				return ErrNoExtension
			}
			if !v.allowed.Contains(ext) {
				return ErrExtensionNotAllowed
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// Extension returns the text after the last dot of the final path element
// of name. A name without a dot, a name whose only dot is the leading one
// (".txt") and the dot segments "." and ".." have no extension. "file."
// has an empty extension.
func Extension(name string) (string, bool) {
	base := path.Base(name)
	if base == "." || base == ".." || base == "/" {
		return "", false
	}

	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return "", false
	}

	return base[idx+1:], true
}

// IsSafeFileName reports whether name can only refer to a single entry
// directly inside a storage location and can be quoted in a
// Content-Disposition header as is.
func IsSafeFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}

	for _, r := range name {
		if r == '/' || r == '\\' || r == '"' || unicode.IsControl(r) {
			return false
		}
	}

	return true
}
