package paperless

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Create requests are validated client-side before any bytes hit the
// wire, so obvious mistakes fail fast without an HTTP round trip.
// Server-side rules still apply and surface as validation errors.

// Validate checks required tag fields.
func (r *TagCreateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
	)
}

// Validate checks required correspondent fields.
func (r *CorrespondentCreateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
	)
}

// Validate checks required document type fields.
func (r *DocumentTypeCreateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
	)
}

// Validate checks required storage path fields.
func (r *StoragePathCreateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Path, validation.Required),
	)
}

// Validate checks required custom field fields.
func (r *CustomFieldCreateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.DataType, validation.Required),
	)
}

// Validate checks required share link fields.
func (r *ShareLinkCreateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Document, validation.Required),
	)
}

// Validate checks that an upload has a filename and a content source.
func (u *DocumentUpload) Validate() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Filename, validation.Required),
		validation.Field(&u.Content, validation.Required),
	)
}
