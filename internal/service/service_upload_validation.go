package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-file-drop/internal/validators"
	"github.com/MKhiriev/go-file-drop/models"
)

// UploadValidationService rejects files whose name is unsafe or whose
// extension is not allowed before they reach the wrapped service.
type UploadValidationService struct {
	inner     UploadService
	validator validators.Validator
	fields    []string
}

// NewUploadValidationService builds the validating wrapper. With
// allowUnsafeNames set only the extension is checked.
func NewUploadValidationService(allowedExtensions []string, allowUnsafeNames bool) UploadServiceWrapper {
	fields := []string{validators.FieldExtension, validators.FieldName}
	if allowUnsafeNames {
		fields = []string{validators.FieldExtension}
	}

	return &UploadValidationService{
		validator: validators.NewFileNameValidator(allowedExtensions),
		fields:    fields,
	}
}

func (v *UploadValidationService) PrepareUpload(ctx context.Context) error {
	return v.inner.PrepareUpload(ctx)
}

func (v *UploadValidationService) CheckFileName(ctx context.Context, name string) error {
	if err := v.validator.Validate(ctx, name, v.fields...); err != nil {
		return fmt.Errorf("error validating file name %q: %w", name, err)
	}

	return v.inner.CheckFileName(ctx, name)
}

func (v *UploadValidationService) UploadFile(ctx context.Context, file models.StoredFile) error {
	if err := v.validator.Validate(ctx, file, v.fields...); err != nil {
		return fmt.Errorf("error validating file %q before saving: %w", file.Name, err)
	}

	return v.inner.UploadFile(ctx, file)
}

func (v *UploadValidationService) Wrap(wrapped UploadService) UploadService {
	v.inner = wrapped
	return v
}
