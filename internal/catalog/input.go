package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"travelcatalog/pkg/domain"
	"travelcatalog/pkg/serrors"
)

// Input is a package as submitted by a client, before validation. Every field
// holds its textual form; numbers sent as JSON numbers arrive as their literal
// text so that "5" and 5 are treated the same.
type Input struct {
	PackageName string
	PackageCode string
	Destination string
	Duration    string
	Price       string
}

const validationPrefix = "Package validation failed: "

// ValidationError reports the given input problems as a single ErrValidation
// error, e.g. "Package validation failed: price must be a number".
func ValidationError(problems ...string) error {
	return serrors.With(serrors.ErrValidation, "%s%s", validationPrefix, strings.Join(problems, ", "))
}

// Package validates the input and converts it into a domain.Package. All
// problems are reported at once in a single ErrValidation error.
func (in Input) Package() (domain.Package, error) {
	var problems []string
	required := func(field, value string) {
		if value == "" {
			problems = append(problems, field+" is required")
		}
	}

	required("packageName", in.PackageName)
	required("packageCode", in.PackageCode)
	required("destination", in.Destination)

	duration, err := parseDuration(in.Duration)
	if err != nil {
		problems = append(problems, "duration "+err.Error())
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		problems = append(problems, "price "+err.Error())
	}

	if len(problems) > 0 {
		return domain.Package{}, ValidationError(problems...)
	}

	return domain.Package{
		Name:        in.PackageName,
		Code:        in.PackageCode,
		Destination: in.Destination,
		Duration:    duration,
		Price:       price,
	}, nil
}

type problem string

func (p problem) Error() string { return string(p) }

const (
	errRequired   problem = "is required"
	errNotNumber  problem = "must be a number"
	errNotWhole   problem = "must be a whole number of days"
	errOutOfRange problem = "is out of range"
)

func parseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errRequired
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotNumber
	}

	return f, nil
}

func parseDuration(raw string) (int, error) {
	f, err := parseNumber(raw)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, errNotWhole
	}
	// stored as a 32-bit integer column
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, errOutOfRange
	}

	return int(f), nil
}

func parsePrice(raw string) (float64, error) {
	return parseNumber(raw)
}

// String renders the input for logging.
func (in Input) String() string {
	return fmt.Sprintf("Input{code=%q name=%q destination=%q duration=%q price=%q}",
		in.PackageCode, in.PackageName, in.Destination, in.Duration, in.Price)
}
