package catalog_test

import (
	"testing"
	"travelcatalog/internal/catalog"
	"travelcatalog/pkg/domain"
	"travelcatalog/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func validInput() catalog.Input {
	return catalog.Input{
		PackageName: "Paris",
		PackageCode: "P-001",
		Destination: "Paris",
		Duration:    "5",
		Price:       "1200",
	}
}

func TestInput_Package_Valid(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(in *catalog.Input)
		duration int
		price    float64
	}{
		{
			name:     "numeric text",
			modify:   func(in *catalog.Input) {},
			duration: 5,
			price:    1200,
		},
		{
			name: "surrounding spaces",
			modify: func(in *catalog.Input) {
				in.Duration = " 7 "
				in.Price = "\t99.5\n"
			},
			duration: 7,
			price:    99.5,
		},
		{
			name: "integral float duration",
			modify: func(in *catalog.Input) {
				in.Duration = "5.0"
			},
			duration: 5,
			price:    1200,
		},
		{
			name: "exponent price",
			modify: func(in *catalog.Input) {
				in.Price = "1.2e3"
			},
			duration: 5,
			price:    1200,
		},
		{
			name: "zero and negative values are accepted",
			modify: func(in *catalog.Input) {
				in.Duration = "0"
				in.Price = "-10"
			},
			duration: 0,
			price:    -10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.modify(&in)

			pkg, err := in.Package()
			require.NoError(t, err)
			require.Equal(t, domain.Package{
				Name:        in.PackageName,
				Code:        in.PackageCode,
				Destination: in.Destination,
				Duration:    tt.duration,
				Price:       tt.price,
			}, pkg)
		})
	}
}

func TestInput_Package_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(in *catalog.Input)
		message string
	}{
		{
			name:    "missing name",
			modify:  func(in *catalog.Input) { in.PackageName = "" },
			message: "Package validation failed: packageName is required",
		},
		{
			name:    "missing code",
			modify:  func(in *catalog.Input) { in.PackageCode = "" },
			message: "Package validation failed: packageCode is required",
		},
		{
			name:    "missing destination",
			modify:  func(in *catalog.Input) { in.Destination = "" },
			message: "Package validation failed: destination is required",
		},
		{
			name:    "missing duration",
			modify:  func(in *catalog.Input) { in.Duration = "" },
			message: "Package validation failed: duration is required",
		},
		{
			name:    "non numeric duration",
			modify:  func(in *catalog.Input) { in.Duration = "five" },
			message: "Package validation failed: duration must be a number",
		},
		{
			name:    "fractional duration",
			modify:  func(in *catalog.Input) { in.Duration = "2.5" },
			message: "Package validation failed: duration must be a whole number of days",
		},
		{
			name:    "huge duration",
			modify:  func(in *catalog.Input) { in.Duration = "1e12" },
			message: "Package validation failed: duration is out of range",
		},
		{
			name:    "nan price",
			modify:  func(in *catalog.Input) { in.Price = "NaN" },
			message: "Package validation failed: price must be a number",
		},
		{
			name:    "infinite price",
			modify:  func(in *catalog.Input) { in.Price = "Inf" },
			message: "Package validation failed: price must be a number",
		},
		{
			name:    "blank price",
			modify:  func(in *catalog.Input) { in.Price = "   " },
			message: "Package validation failed: price is required",
		},
		{
			name: "all problems are reported together",
			modify: func(in *catalog.Input) {
				*in = catalog.Input{Duration: "x"}
			},
			message: "Package validation failed: packageName is required, packageCode is required, " +
				"destination is required, duration must be a number, price is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.modify(&in)

			_, err := in.Package()
			require.ErrorIs(t, err, serrors.ErrValidation)
			require.EqualError(t, err, tt.message)
		})
	}
}
