// SPDX-License-Identifier: MIT

package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tsmtype/frame"
)

// Container kinds understood by Decode.
const (
	KindSeries     = "series"
	KindFrame      = "frame"
	KindSlice      = "slice"
	KindTensor     = "tensor3d"
	KindFrameList  = "frame-list"
	KindMultiIndex = "multiindex"
)

var (
	// ErrUnknownKind indicates a document kind Decode does not know.
	ErrUnknownKind = errors.New("load: unknown container kind")

	// ErrMalformed indicates a document whose fields do not fit its kind.
	ErrMalformed = errors.New("load: malformed document")
)

// Kinds lists the supported container kinds.
func Kinds() []string {
	return []string{KindSeries, KindFrame, KindSlice, KindTensor, KindFrameList, KindMultiIndex}
}

// Document is the YAML form of one container. Values stays undecoded until
// the kind is known.
type Document struct {
	Kind      string     `yaml:"kind"`
	Name      string     `yaml:"name,omitempty"`
	Columns   []string   `yaml:"columns,omitempty"`
	Index     []int64    `yaml:"index,omitempty"`
	Start     string     `yaml:"start,omitempty"`
	Values    yaml.Node  `yaml:"values"`
	Frames    []Document `yaml:"frames,omitempty"`
	Instances []string   `yaml:"instances,omitempty"`
	Times     []int64    `yaml:"times,omitempty"`
}

// File reads and decodes the document at path.
func File(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	return Read(bytes.NewReader(data))
}

// Read decodes a single document from r.
//
// The returned object is deliberately not validated: a malformed container
// (say a frame whose columns differ in length) decodes fine and is left for
// the mtype checks to reject. Only shape errors that prevent building the Go
// value at all are reported here.
func Read(r io.Reader) (any, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return Decode(&doc)
}

// Decode builds the object described by doc.
func Decode(doc *Document) (any, error) {
	switch strings.ToLower(doc.Kind) {
	case KindSeries:
		var values []float64
		if err := decodeValues(doc, &values); err != nil {
			return nil, err
		}
		ix, err := doc.index(len(values))
		if err != nil {
			return nil, err
		}
		return &frame.Series{Name: doc.Name, Index: ix, Values: values}, nil

	case KindFrame:
		return doc.frame()

	case KindSlice:
		if v := doc.Values; v.Kind == yaml.SequenceNode && len(v.Content) > 0 && v.Content[0].Kind == yaml.SequenceNode {
			var rows [][]float64
			if err := decodeValues(doc, &rows); err != nil {
				return nil, err
			}
			return rows, nil
		}
		var flat []float64
		if err := decodeValues(doc, &flat); err != nil {
			return nil, err
		}
		return flat, nil

	case KindTensor:
		var cube [][][]float64
		if err := decodeValues(doc, &cube); err != nil {
			return nil, err
		}
		m, err := frame.NewTensor3DFrom(cube)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return m, nil

	case KindFrameList:
		frames := make([]*frame.Frame, len(doc.Frames))
		for i := range doc.Frames {
			f, err := doc.Frames[i].frame()
			if err != nil {
				return nil, fmt.Errorf("frames[%d]: %w", i, err)
			}
			frames[i] = f
		}
		return frames, nil

	case KindMultiIndex:
		var data [][]float64
		if err := decodeValues(doc, &data); err != nil {
			return nil, err
		}
		return &frame.MultiFrame{
			Columns:   doc.Columns,
			Instances: doc.Instances,
			Times:     doc.Times,
			Data:      data,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, doc.Kind, strings.Join(Kinds(), ", "))
	}
}

func (doc *Document) frame() (*frame.Frame, error) {
	var data [][]float64
	if err := decodeValues(doc, &data); err != nil {
		return nil, err
	}
	columns := doc.Columns
	if columns == nil {
		columns = make([]string, len(data))
		for j := range columns {
			columns[j] = fmt.Sprint(j)
		}
	}
	rows := 0
	if len(data) > 0 {
		rows = len(data[0])
	}
	ix, err := doc.index(rows)
	if err != nil {
		return nil, err
	}

	return &frame.Frame{Columns: columns, Index: ix, Data: data}, nil
}

// index resolves the time axis: integer labels, a monthly start, or the
// zero Index (positional).
func (doc *Document) index(n int) (frame.Index, error) {
	switch {
	case doc.Index != nil && doc.Start != "":
		return frame.Index{}, fmt.Errorf("%w: index and start are exclusive", ErrMalformed)
	case doc.Index != nil:
		return frame.NewIntIndex(doc.Index), nil
	case doc.Start != "":
		start, err := time.Parse("2006-01", doc.Start)
		if err != nil {
			return frame.Index{}, fmt.Errorf("%w: start %q: %v", ErrMalformed, doc.Start, err)
		}
		return frame.NewMonthlyIndex(start.Year(), start.Month(), n), nil
	default:
		return frame.Index{}, nil
	}
}

func decodeValues(doc *Document, out any) error {
	if doc.Values.Kind == 0 {
		return fmt.Errorf("%w: %s needs values", ErrMalformed, doc.Kind)
	}
	if err := doc.Values.Decode(out); err != nil {
		return fmt.Errorf("%w: %s values: %v", ErrMalformed, doc.Kind, err)
	}

	return nil
}
