// Package cfen implements Compact Facelet Encoding Notation: a textual
// format for an NxN facelet.Cube, including a wildcard color ("?") for
// "don't care" stickers, used by the CLI's pattern-matching commands to
// describe partial states (a cross, an OLL case, ...) without needing
// every sticker pinned down.
package cfen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/LarryWang2718/AI-Cube-Solver/internal/facelet"
)

// CFENOrientation names which color is on the Up face and which is on
// the Front face, fixing how the six CFEN face fields map onto the
// cube's Front/Back/Left/Right/Up/Down faces.
type CFENOrientation struct {
	Up    facelet.Color
	Front facelet.Color
}

// CFENFace is one face's stickers, row-major, flattened.
type CFENFace struct {
	Stickers []facelet.Color
}

// CFENState is a complete (or partially wildcarded) cube pattern in
// CFEN form: an orientation plus six faces in U/R/F/D/L/B order.
type CFENState struct {
	Orientation CFENOrientation
	Faces       [6]CFENFace
	Dimension   int
}

// colorByLetter is built from facelet.Color.String() rather than a
// second hand-written switch, so the CFEN alphabet can never drift out
// of sync with the color table cube.go defines.
var colorByLetter = func() map[byte]facelet.Color {
	m := make(map[byte]facelet.Color, int(facelet.Grey)+1)
	for c := facelet.White; c <= facelet.Grey; c++ {
		m[c.String()[0]] = c
	}
	return m
}()

// String renders state as a CFEN string: "<up><front>|<face>/<face>/...".
func (state *CFENState) String() string {
	var sb strings.Builder
	sb.WriteString(state.Orientation.Up.String())
	sb.WriteString(state.Orientation.Front.String())
	sb.WriteByte('|')
	for i, face := range state.Faces {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(face.compactString())
	}
	return sb.String()
}

// compactString run-length encodes a face's stickers: a repeated color
// is written once followed by its run length (omitted when the run is
// a single sticker).
func (f CFENFace) compactString() string {
	var sb strings.Builder
	for i := 0; i < len(f.Stickers); {
		color := f.Stickers[i]
		j := i + 1
		for j < len(f.Stickers) && f.Stickers[j] == color {
			j++
		}
		sb.WriteString(color.String())
		if run := j - i; run > 1 {
			sb.WriteString(strconv.Itoa(run))
		}
		i = j
	}
	return sb.String()
}

// ParseCFEN parses a CFEN string of the form "<orientation>|<faces>".
func ParseCFEN(cfenStr string) (*CFENState, error) {
	parts := strings.SplitN(cfenStr, "|", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid CFEN %q: expected 'orientation|faces'", cfenStr)
	}

	orientation, err := parseOrientation(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid orientation %q: %w", parts[0], err)
	}

	faces, dimension, err := parseFaces(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid faces %q: %w", parts[1], err)
	}

	return &CFENState{Orientation: *orientation, Faces: faces, Dimension: dimension}, nil
}

func parseOrientation(s string) (*CFENOrientation, error) {
	if len(s) != 2 {
		return nil, fmt.Errorf("orientation must be exactly 2 characters, got %d", len(s))
	}
	up, ok := colorByLetter[s[0]]
	if !ok {
		return nil, fmt.Errorf("unknown up color %q", s[0])
	}
	front, ok := colorByLetter[s[1]]
	if !ok {
		return nil, fmt.Errorf("unknown front color %q", s[1])
	}
	return &CFENOrientation{Up: up, Front: front}, nil
}

func parseFaces(s string) ([6]CFENFace, int, error) {
	faceStrs := strings.Split(s, "/")
	if len(faceStrs) != 6 {
		return [6]CFENFace{}, 0, fmt.Errorf("expected 6 faces separated by '/', got %d", len(faceStrs))
	}

	var faces [6]CFENFace
	var dimension int
	for i, faceStr := range faceStrs {
		face, err := parseFace(faceStr)
		if err != nil {
			return [6]CFENFace{}, 0, fmt.Errorf("face %d: %w", i, err)
		}
		if i == 0 {
			dim := int(math.Round(math.Sqrt(float64(len(face.Stickers)))))
			if dim*dim != len(face.Stickers) {
				return [6]CFENFace{}, 0, fmt.Errorf("face 0 has %d stickers, not a perfect square", len(face.Stickers))
			}
			if dim < 2 {
				return [6]CFENFace{}, 0, fmt.Errorf("dimension %d is below the smallest supported cube (2x2)", dim)
			}
			dimension = dim
		} else if len(face.Stickers) != dimension*dimension {
			return [6]CFENFace{}, 0, fmt.Errorf("face %d has %d stickers, expected %d", i, len(face.Stickers), dimension*dimension)
		}
		faces[i] = *face
	}
	return faces, dimension, nil
}

// maxFaceStickers bounds a single face to the largest supported cube
// (20x20), so a hostile run count like "W999999999" is rejected before
// anything is allocated.
const maxFaceStickers = 20 * 20

// parseFace decodes one run-length-encoded face string, e.g. "W3Y2?4".
// Every byte must belong to a token (a known color letter optionally
// followed by a decimal run count); anything else is rejected.
func parseFace(s string) (*CFENFace, error) {
	var stickers []facelet.Color
	pos := 0
	for pos < len(s) {
		color, ok := colorByLetter[s[pos]]
		if !ok {
			return nil, fmt.Errorf("unknown color character %q in %q", s[pos], s)
		}
		pos++

		start := pos
		for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
			pos++
		}
		count := 1
		if pos > start {
			n, err := strconv.Atoi(s[start:pos])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid run count %q in %q", s[start:pos], s)
			}
			count = n
		}
		if len(stickers)+count > maxFaceStickers {
			return nil, fmt.Errorf("face %q exceeds %d stickers", s, maxFaceStickers)
		}

		for i := 0; i < count; i++ {
			stickers = append(stickers, color)
		}
	}
	if len(stickers) == 0 {
		return nil, fmt.Errorf("no color tokens found in %q", s)
	}
	return &CFENFace{Stickers: stickers}, nil
}
