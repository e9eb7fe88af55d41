/*
 * surfjson.go, part of gosurf.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package surfjson stores phase diagrams in JSON documents, optionally
//compressed with zstd, so they can be plotted or analysed later.
package surfjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	surf "github.com/rmera/gosurf"
	"gonum.org/v1/gonum/mat"
)

//Header identifies a stored diagram and the calculation that produced it.
type Header struct {
	ID      uuid.UUID         `json:"id"`
	Kind    string            `json:"kind"`
	Created time.Time         `json:"created"`
	Params  map[string]string `json:"params,omitempty"`
}

//NewHeader returns a header with a new random ID and the current time.
func NewHeader(kind string, params map[string]string) Header {
	return Header{ID: uuid.New(), Kind: kind, Created: time.Now().UTC(), Params: params}
}

//A ready-to-serialize container for a diagram. NaN energies are stored as null.
type diagram struct {
	X           []float64  `json:"x"`
	Y           []float64  `json:"y"`
	Phases      []int      `json:"phases"`
	Energy      []*float64 `json:"energy"`
	Ticks       []int      `json:"ticks"`
	Labels      []string   `json:"labels"`
	Colors      []string   `json:"colors"`
	XLabel      string     `json:"xlabel"`
	YLabel      string     `json:"ylabel"`
	Units       string     `json:"units"`
	Temperature float64    `json:"temperature,omitempty"`
}

type document struct {
	Header  Header  `json:"header"`
	Diagram diagram `json:"diagram"`
}

func fromDiagram(d *surf.Diagram) diagram {
	e := d.Energy.RawMatrix()
	r, c := d.Energy.Dims()
	en := make([]*float64, 0, r*c)
	for i := 0; i < r; i++ {
		for _, v := range e.Data[i*e.Stride : i*e.Stride+c] {
			if math.IsNaN(v) {
				en = append(en, nil)
				continue
			}
			v := v
			en = append(en, &v)
		}
	}
	return diagram{
		X:           d.X,
		Y:           d.Y,
		Phases:      d.Phases.Data,
		Energy:      en,
		Ticks:       d.Ticks,
		Labels:      d.Labels,
		Colors:      d.Colors,
		XLabel:      d.XLabel,
		YLabel:      d.YLabel,
		Units:       d.Units,
		Temperature: d.Temperature,
	}
}

func (j diagram) toDiagram() (*surf.Diagram, error) {
	r, c := len(j.Y), len(j.X)
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("surfjson: empty diagram")
	}
	if len(j.Phases) != r*c || len(j.Energy) != r*c {
		return nil, fmt.Errorf("surfjson: %d phases and %d energies for a %dx%d diagram", len(j.Phases), len(j.Energy), r, c)
	}
	if len(j.Labels) != len(j.Ticks) || len(j.Colors) != len(j.Ticks) {
		return nil, fmt.Errorf("surfjson: %d ticks, %d labels and %d colors", len(j.Ticks), len(j.Labels), len(j.Colors))
	}
	for _, v := range j.Phases {
		if v < 0 || v >= len(j.Ticks) {
			return nil, fmt.Errorf("surfjson: phase index %d out of range", v)
		}
	}
	en := make([]float64, r*c)
	for i, v := range j.Energy {
		if v == nil {
			en[i] = math.NaN()
			continue
		}
		en[i] = *v
	}
	return &surf.Diagram{
		X:           j.X,
		Y:           j.Y,
		Phases:      &surf.IntGrid{Rows: r, Cols: c, Data: j.Phases},
		Energy:      mat.NewDense(r, c, en),
		Ticks:       j.Ticks,
		Labels:      j.Labels,
		Colors:      j.Colors,
		XLabel:      j.XLabel,
		YLabel:      j.YLabel,
		Units:       j.Units,
		Temperature: j.Temperature,
	}, nil
}

//Write writes the diagram d with the header h to w as JSON.
func Write(w io.Writer, d *surf.Diagram, h Header) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(document{Header: h, Diagram: fromDiagram(d)}); err != nil {
		return fmt.Errorf("surfjson: encoding diagram: %w", err)
	}
	return nil
}

//Read reads a diagram and its header, written by Write, from r.
func Read(r io.Reader) (*surf.Diagram, Header, error) {
	var doc document
	if err := json.NewDecoder(bufio.NewReader(r)).Decode(&doc); err != nil {
		return nil, Header{}, fmt.Errorf("surfjson: decoding diagram: %w", err)
	}
	d, err := doc.Diagram.toDiagram()
	if err != nil {
		return nil, Header{}, err
	}
	return d, doc.Header, nil
}

func compressed(path string) bool {
	return strings.HasSuffix(path, ".zst")
}

//Save writes d and h to the file path. Paths ending in .zst are compressed
//with zstd.
func Save(path string, d *surf.Diagram, h Header) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("surfjson: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("surfjson: %w", cerr)
		}
	}()
	if !compressed(path) {
		return Write(f, d, h)
	}
	z, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("surfjson: %w", err)
	}
	if err := Write(z, d, h); err != nil {
		z.Close()
		return err
	}
	if err := z.Close(); err != nil {
		return fmt.Errorf("surfjson: compressing %s: %w", path, err)
	}
	return nil
}

//Load reads a diagram saved with Save from the file path.
func Load(path string) (*surf.Diagram, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, fmt.Errorf("surfjson: %w", err)
	}
	defer f.Close()
	if !compressed(path) {
		return Read(f)
	}
	z, err := zstd.NewReader(f)
	if err != nil {
		return nil, Header{}, fmt.Errorf("surfjson: %w", err)
	}
	defer z.Close()
	return Read(z)
}
