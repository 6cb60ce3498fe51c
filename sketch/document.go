package sketch

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/curvekit/curvekit"
)

var (
	// ErrUnknownFamily indicates a document with an unrecognized curve type tag.
	ErrUnknownFamily = errors.New("document has unknown curve type")
	// ErrNoControlPoints indicates a document without a control point list.
	ErrNoControlPoints = errors.New("document has no control points")
)

// PointRecord is the interchange shape of one control point.
type PointRecord struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Weight float64 `json:"weight"`
}

// Document is the JSON interchange shape for a sketch. Settings and
// Metadata are opaque to this package and survive a round trip unparsed.
type Document struct {
	Type              string          `json:"type"`
	Degree            int             `json:"degree"`
	InterpolationStep float64         `json:"interpolationStep,omitempty"`
	ControlPoints     []PointRecord   `json:"controlPoints"`
	Settings          json.RawMessage `json:"settings,omitempty"`
	Metadata          json.RawMessage `json:"metadata,omitempty"`
}

// Export captures a sketch as an interchange document.
func Export(s *Sketch) Document {
	doc := Document{
		Type:          string(s.settings.Family),
		Degree:        s.EffectiveDegree(),
		ControlPoints: make([]PointRecord, 0, s.N()),
	}
	if s.settings.Family == curvekit.BSpline {
		doc.InterpolationStep = s.settings.InterpolationStep
	}
	for _, cp := range s.points {
		doc.ControlPoints = append(doc.ControlPoints, PointRecord{
			X:      cp.P.X(),
			Y:      cp.P.Y(),
			Weight: cp.W,
		})
	}
	return doc
}

// Import rebuilds a sketch from an interchange document. Weights are
// re-clamped into the legal range; a missing control point list or an
// unknown type tag is an error.
func Import(doc Document) (*Sketch, error) {
	family, ok := curvekit.ParseFamily(doc.Type)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownFamily, doc.Type)
	}
	if doc.ControlPoints == nil {
		return nil, ErrNoControlPoints
	}
	settings := DefaultSettings(family)
	if family == curvekit.BSpline {
		if doc.Degree > 0 {
			settings.Degree = doc.Degree
		}
		if doc.InterpolationStep > 0 {
			settings.InterpolationStep = doc.InterpolationStep
		}
	}
	s := New(settings)
	for _, rec := range doc.ControlPoints {
		s.AddPoint(rec.X, rec.Y, rec.Weight)
	}
	tracer().Infof("imported %s sketch with %d control points", family, s.N())
	return s, nil
}

// Save writes a sketch to path as indented JSON, creating parent
// directories as needed.
func Save(path string, s *Sketch) error {
	doc := Export(s)
	d, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, d, 0644)
}

// Load reads a sketch document from path.
func Load(path string) (*Sketch, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(d, &doc); err != nil {
		return nil, err
	}
	return Import(doc)
}
