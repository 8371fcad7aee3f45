package api

import (
	"math"

	json "github.com/goccy/go-json"

	"github.com/samcharles93/normlab/pkg/lab"
	"github.com/samcharles93/normlab/pkg/mat"
	"github.com/samcharles93/normlab/pkg/weights"
)

// ResponseError is the error payload every non-2xx body carries.
type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// jsonFloat marshals non-finite values as null. The core lets NaN and Inf
// propagate, but JSON has no literal for them, so the wire carries null
// rather than failing to encode a snapshot.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

type DimsDTO struct {
	M int `json:"m"`
	K int `json:"k"`
	N int `json:"n"`
}

type ConfigDTO struct {
	Kind     string    `json:"kind"`
	Mean     jsonFloat `json:"mean"`
	Std      jsonFloat `json:"std"`
	Constant jsonFloat `json:"constant"`
	Scale    jsonFloat `json:"scale"`
}

type ParamsDTO struct {
	Dims DimsDTO   `json:"dims"`
	A    ConfigDTO `json:"a"`
	B    ConfigDTO `json:"b"`
	Norm string    `json:"norm"`
	Seed int64     `json:"seed"`
}

type NormsDTO struct {
	Kind string    `json:"kind"`
	A    jsonFloat `json:"a"`
	B    jsonFloat `json:"b"`
	C    jsonFloat `json:"c"`
}

type SnapshotDTO struct {
	Params ParamsDTO     `json:"params"`
	A      [][]jsonFloat `json:"a"`
	B      [][]jsonFloat `json:"b"`
	C      [][]jsonFloat `json:"c"`
	Norms  NormsDTO      `json:"norms"`
}

type SessionResponse struct {
	ID        string      `json:"id"`
	CreatedAt int64       `json:"created_at"`
	Snapshot  SnapshotDTO `json:"snapshot"`
}

type PatchResponse struct {
	ID          string      `json:"id"`
	Regenerated bool        `json:"regenerated"`
	Snapshot    SnapshotDTO `json:"snapshot"`
}

type DeleteSessionResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// DimsPatch carries requested dimensions as floats so fractional or
// out-of-range values flow through the clamp instead of failing to decode.
type DimsPatch struct {
	M *float64 `json:"m,omitempty"`
	K *float64 `json:"k,omitempty"`
	N *float64 `json:"n,omitempty"`
}

type ConfigPatch struct {
	Kind     *string  `json:"kind,omitempty"`
	Mean     *float64 `json:"mean,omitempty"`
	Std      *float64 `json:"std,omitempty"`
	Constant *float64 `json:"constant,omitempty"`
	Scale    *float64 `json:"scale,omitempty"`
}

// ParamsPatch is the request body for session creation and updates. Every
// field is optional; absent fields keep their current value.
type ParamsPatch struct {
	Dims *DimsPatch   `json:"dims,omitempty"`
	A    *ConfigPatch `json:"a,omitempty"`
	B    *ConfigPatch `json:"b,omitempty"`
	Norm *string      `json:"norm,omitempty"`
	Seed *int64       `json:"seed,omitempty"`
}

// NewSnapshotDTO converts a lab snapshot into its wire shape. The report
// command reuses it so the CLI and the API emit identical JSON.
func NewSnapshotDTO(s lab.Snapshot) SnapshotDTO {
	return SnapshotDTO{
		Params: paramsToDTO(s.Params),
		A:      matrixToDTO(s.A),
		B:      matrixToDTO(s.B),
		C:      matrixToDTO(s.C),
		Norms: NormsDTO{
			Kind: string(s.Params.Norm),
			A:    jsonFloat(s.Norms.A),
			B:    jsonFloat(s.Norms.B),
			C:    jsonFloat(s.Norms.C),
		},
	}
}

func paramsToDTO(p lab.Params) ParamsDTO {
	return ParamsDTO{
		Dims: DimsDTO{M: p.Dims.M, K: p.Dims.K, N: p.Dims.N},
		A:    configToDTO(p.A),
		B:    configToDTO(p.B),
		Norm: string(p.Norm),
		Seed: p.Seed,
	}
}

func configToDTO(c weights.Config) ConfigDTO {
	return ConfigDTO{
		Kind:     string(c.Kind),
		Mean:     jsonFloat(c.Mean),
		Std:      jsonFloat(c.Std),
		Constant: jsonFloat(c.Constant),
		Scale:    jsonFloat(c.Scale),
	}
}

func matrixToDTO(m mat.Matrix) [][]jsonFloat {
	rows := make([][]jsonFloat, m.R)
	for i := range rows {
		src := m.Row(i)
		row := make([]jsonFloat, m.C)
		for j, v := range src {
			row[j] = jsonFloat(v)
		}
		rows[i] = row
	}
	return rows
}
