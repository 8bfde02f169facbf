package cataloghandler

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"travelcatalog/internal/catalog"
	"travelcatalog/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// maxBodyBytes bounds request bodies of the mutating endpoints.
const maxBodyBytes = 100 << 10

// Wire names of the package fields.
const (
	fieldID          = "_id"
	fieldName        = "packageName"
	fieldCode        = "packageCode"
	fieldDestination = "destination"
	fieldDuration    = "duration"
	fieldPrice       = "price"
)

var errNotScalar = errors.New("must be a string or a number")

// readBody reads the whole request body, treating an empty body as "{}".
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read request body")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return []byte("{}"), nil
	}

	return body, nil
}

// decodeText reads a scalar JSON value as text. Numbers keep their literal
// form, booleans become "true"/"false" and null is reported as empty.
func decodeText(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.String:
		return d.Str()
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return "", err
		}

		return n.String(), nil
	case jx.Bool:
		b, err := d.Bool()
		if err != nil {
			return "", err
		}

		return strconv.FormatBool(b), nil
	case jx.Null:
		return "", d.Null()
	default:
		if err := d.Skip(); err != nil {
			return "", err
		}

		return "", errNotScalar
	}
}

// decodeInput parses an add request. Malformed JSON is returned as a plain
// error; fields holding objects or arrays yield a catalog validation error.
func decodeInput(body []byte) (catalog.Input, error) {
	var (
		in       catalog.Input
		problems []string
	)

	d := jx.DecodeBytes(body)
	if d.Next() != jx.Object {
		return in, errors.New("invalid json: request body must be an object")
	}

	err := d.Obj(func(d *jx.Decoder, key string) error {
		var field *string
		switch key {
		case fieldName:
			field = &in.PackageName
		case fieldCode:
			field = &in.PackageCode
		case fieldDestination:
			field = &in.Destination
		case fieldDuration:
			field = &in.Duration
		case fieldPrice:
			field = &in.Price
		default:
			return d.Skip()
		}

		v, err := decodeText(d)
		if errors.Is(err, errNotScalar) {
			problems = append(problems, key+" "+err.Error())

			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "decode %q", key)
		}
		*field = v

		return nil
	})
	if err != nil {
		return in, errors.Wrap(err, "invalid json")
	}

	if len(problems) > 0 {
		return in, catalog.ValidationError(problems...)
	}

	return in, nil
}

// decodeID parses a delete request and returns the raw id, empty if absent.
func decodeID(body []byte) (string, error) {
	var id string

	d := jx.DecodeBytes(body)
	if d.Next() != jx.Object {
		return "", errors.New("invalid json: request body must be an object")
	}

	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "id" {
			return d.Skip()
		}

		v, err := decodeText(d)
		if err != nil {
			return errors.Wrap(err, "decode \"id\"")
		}
		id = v

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "invalid json")
	}

	return id, nil
}

func encodePackage(e *jx.Encoder, pkg domain.Package) {
	e.Obj(func(e *jx.Encoder) {
		e.Field(fieldID, func(e *jx.Encoder) { e.Str(pkg.ID.String()) })
		e.Field(fieldName, func(e *jx.Encoder) { e.Str(pkg.Name) })
		e.Field(fieldCode, func(e *jx.Encoder) { e.Str(pkg.Code) })
		e.Field(fieldDestination, func(e *jx.Encoder) { e.Str(pkg.Destination) })
		e.Field(fieldDuration, func(e *jx.Encoder) { e.Int(pkg.Duration) })
		e.Field(fieldPrice, func(e *jx.Encoder) { e.Float64(pkg.Price) })
	})
}

func encodePackages(e *jx.Encoder, pkgs []domain.Package) {
	e.Arr(func(e *jx.Encoder) {
		for _, pkg := range pkgs {
			encodePackage(e, pkg)
		}
	})
}

func encodeMessage(e *jx.Encoder, msg string) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("message", func(e *jx.Encoder) { e.Str(msg) })
	})
}
