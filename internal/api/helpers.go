package api

import (
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/normlab/pkg/lab"
	"github.com/samcharles93/normlab/pkg/mat"
	"github.com/samcharles93/normlab/pkg/weights"
)

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg)
}

func writeNotFound(c *echo.Context, msg string) error {
	return writeError(c, http.StatusNotFound, "not_found_error", msg)
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return c.JSON(status, map[string]any{
		"error": ResponseError{
			Message: msg,
			Type:    errType,
		},
	})
}

// decodeJSON decodes one JSON value from r. Unknown fields are rejected so
// a typo in an experiment knob fails loudly instead of being ignored.
func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}

// decodeOptionalJSON behaves like decodeJSON but treats an empty body as
// the zero value, which is what session creation without overrides sends.
func decodeOptionalJSON[T any](r io.Reader) (T, error) {
	var out T
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		if err == io.EOF {
			return out, nil
		}
		return out, err
	}
	return out, nil
}

// applyPatch folds a request patch into base, validating the one thing JSON
// decoding cannot: that kind names are known. Dims are clamped here so the
// response reflects the effective shape, not the requested one.
func applyPatch(base lab.Params, patch ParamsPatch) (lab.Params, error) {
	next := base
	if patch.Dims != nil {
		d := patch.Dims
		md, kd, nd := float64(next.Dims.M), float64(next.Dims.K), float64(next.Dims.N)
		if d.M != nil {
			md = *d.M
		}
		if d.K != nil {
			kd = *d.K
		}
		if d.N != nil {
			nd = *d.N
		}
		next.Dims = lab.ClampDims(md, kd, nd)
	}
	if patch.A != nil {
		cfg, err := applyConfigPatch("a", next.A, *patch.A)
		if err != nil {
			return lab.Params{}, err
		}
		next.A = cfg
	}
	if patch.B != nil {
		cfg, err := applyConfigPatch("b", next.B, *patch.B)
		if err != nil {
			return lab.Params{}, err
		}
		next.B = cfg
	}
	if patch.Norm != nil {
		kind := mat.NormKind(*patch.Norm)
		if !kind.Valid() {
			return lab.Params{}, newInvalidRequest(fmt.Sprintf("norm: unknown kind %q", *patch.Norm))
		}
		next.Norm = kind
	}
	if patch.Seed != nil {
		next.Seed = *patch.Seed
	}
	return next, nil
}

func applyConfigPatch(field string, base weights.Config, patch ConfigPatch) (weights.Config, error) {
	cfg := base
	if patch.Kind != nil {
		kind := weights.Kind(*patch.Kind)
		if !kind.Valid() {
			return weights.Config{}, newInvalidRequest(fmt.Sprintf("%s.kind: unknown kind %q", field, *patch.Kind))
		}
		cfg.Kind = kind
	}
	if patch.Mean != nil {
		cfg.Mean = *patch.Mean
	}
	if patch.Std != nil {
		cfg.Std = *patch.Std
	}
	if patch.Constant != nil {
		cfg.Constant = *patch.Constant
	}
	if patch.Scale != nil {
		cfg.Scale = *patch.Scale
	}
	return cfg, nil
}
