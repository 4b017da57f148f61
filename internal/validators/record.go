package validators

import (
	"context"
	"time"

	"github.com/hirunaj/pawtrail/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldName targets the record's display name (pet or vaccine name).
	FieldName = "name"

	// FieldLocation targets the sighting location of a lost/found report.
	FieldLocation = "location"

	// FieldDate targets the record's date field.
	FieldDate = "date"

	// FieldStatus targets the vaccine status field.
	FieldStatus = "status"
)

// dateLayout is the accepted wire format of record dates.
const dateLayout = "2006-01-02"

// recordValidator validates [models.Record] values before they leave the
// client. Rules are per collection: vaccines need a name, health logs need a
// parseable date, lost and found reports need a name and a location.
type recordValidator struct{}

// NewRecordValidator returns a [Validator] for [models.Record] values.
func NewRecordValidator() Validator {
	return &recordValidator{}
}

// Validate implements [Validator]. Without field names it applies the full
// rule set of the record's collection; with field names it checks only the
// named fields.
func (v *recordValidator) Validate(_ context.Context, value any, fields ...string) error {
	var record models.Record
	switch typed := value.(type) {
	case models.Record:
		record = typed
	case *models.Record:
		record = *typed
	default:
		return ErrUnsupportedType
	}

	if len(fields) > 0 {
		for _, field := range fields {
			if err := v.validateField(record, field); err != nil {
				return err
			}
		}
		return nil
	}

	return v.validateCollection(record)
}

func (v *recordValidator) validateCollection(record models.Record) error {
	switch record.Collection {
	case models.CollectionVaccines:
		return firstError(
			v.validateField(record, FieldName),
			v.validateOptionalDate(record),
			v.validateOptionalStatus(record),
		)
	case models.CollectionHealthLogs:
		if record.Date == "" {
			return ErrEmptyDate
		}
		return v.validateField(record, FieldDate)
	case models.CollectionLostReports, models.CollectionFoundReports:
		return firstError(
			v.validateField(record, FieldName),
			v.validateField(record, FieldLocation),
		)
	default:
		return ErrUnknownCollection
	}
}

func (v *recordValidator) validateField(record models.Record, field string) error {
	switch field {
	case FieldName:
		if record.Name == "" {
			return ErrEmptyName
		}
	case FieldLocation:
		if record.Location == "" {
			return ErrEmptyLocation
		}
	case FieldDate:
		if _, err := time.Parse(dateLayout, record.Date); err != nil {
			return ErrInvalidDate
		}
	case FieldStatus:
		if record.Status != models.StatusPending && record.Status != models.StatusDone {
			return ErrInvalidStatus
		}
	default:
		return ErrUnknownField
	}
	return nil
}

// validateOptionalDate accepts an absent date but rejects a malformed one.
func (v *recordValidator) validateOptionalDate(record models.Record) error {
	if record.Date == "" {
		return nil
	}
	return v.validateField(record, FieldDate)
}

// validateOptionalStatus accepts an absent status but rejects an unknown one.
func (v *recordValidator) validateOptionalStatus(record models.Record) error {
	if record.Status == "" {
		return nil
	}
	return v.validateField(record, FieldStatus)
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
