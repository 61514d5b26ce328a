package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
)

// Measurements (height, weight, workout duration, calories burned) are
// stored as int64 centi-units to avoid floating point precision issues.
// The storage columns are NUMERIC(5,2), so values cap at 999.99.

// MaxDecimalPlaces defines the maximum number of decimal places allowed for measurements
const MaxDecimalPlaces = 2

// MaxCentiValue is the largest storable measurement in centi-units (999.99)
const MaxCentiValue = 99999

// ValidateAndConvertMeasurement validates a string measurement and converts
// it to centi-units. Uses a string-based approach to handle decimal places:
// - If no decimal point: appends "00"
// - If one digit after decimal: appends "0"
// - If two digits after decimal: just removes the point
// Returns the value as int64 and an error if validation fails
func ValidateAndConvertMeasurement(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if len(value) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidMeasurement)
	}

	if strings.HasPrefix(value, "-") {
		return 0, errs.ErrNegativeMeasurement
	}

	parts := strings.Split(value, ".")

	if len(parts) > 2 {
		// Multiple decimal points
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidMeasurement)
	}

	var integerValue string

	if len(parts) == 1 {
		// No decimal point - add ".00"
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			// Like "10." - add "00"
			integerValue = parts[0] + "00"
		case 1:
			// One digit after decimal - add one zero
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			// Two digits after decimal - use as is
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidMeasurement, MaxDecimalPlaces)
		}
	}

	centi, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errs.ErrMeasurementOverflow
		}
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidMeasurement, err.Error())
	}

	if centi > MaxCentiValue {
		return 0, errs.ErrMeasurementOverflow
	}

	return centi, nil
}

// FloatToCenti converts a JSON number to centi-units. The value is rendered
// as its shortest round-tripping decimal form and validated through
// ValidateAndConvertMeasurement, so number and string inputs share one set
// of bounds. Values that would wrap int64 when scaled come back as
// ErrMeasurementOverflow, never as a wrapped negative.
func FloatToCenti(value float64) (int64, error) {
	if value < 0 {
		return 0, errs.ErrNegativeMeasurement
	}
	return ValidateAndConvertMeasurement(strconv.FormatFloat(value, 'f', -1, 64))
}

// CentiToString converts centi-units to a decimal string
// For example:
// - 16050 becomes "160.50"
// - 5500 becomes "55.00"
func CentiToString(centi int64) string {
	isNegative := centi < 0
	if isNegative {
		centi = -centi
	}

	centiStr := fmt.Sprintf("%d", centi)

	// Ensure minimum length
	for len(centiStr) < 3 {
		centiStr = "0" + centiStr
	}

	decimalPos := len(centiStr) - 2
	wholePart := centiStr[:decimalPos]
	decimalPart := centiStr[decimalPos:]

	if wholePart == "" {
		wholePart = "0"
	}

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}

// CentiToFloat converts centi-units back to a plain number for JSON bodies
// that carry measurements as numbers rather than strings
func CentiToFloat(centi int64) float64 {
	return float64(centi) / 100
}
