package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/galaxsim/internal/dynamo"
)

type ExportBody struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VX   float64 `json:"vx"`
	VY   float64 `json:"vy"`
	Mass float64 `json:"mass"`
}

type ExportData struct {
	RunMetadata
	Times  []float64    `json:"times"`
	Energy []float64    `json:"energy"`
	Final  []ExportBody `json:"final"`
}

// ExportJSON writes a stored run as a single JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	times, energy, err := s.LoadEnergy(runID)
	if err != nil {
		return err
	}
	bodies, err := s.LoadBodies(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{
		RunMetadata: *meta,
		Times:       times,
		Energy:      energy,
		Final:       exportBodies(bodies),
	})
}

func exportBodies(bodies []dynamo.Body) []ExportBody {
	out := make([]ExportBody, len(bodies))
	for i, b := range bodies {
		out[i] = ExportBody{X: b.Pos.X, Y: b.Pos.Y, VX: b.Vel.X, VY: b.Vel.Y, Mass: b.Mass}
	}
	return out
}
