// Command export writes the rendering test cases to JSON, for use by
// external reference renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/mosaic"
	"seehuhn.de/go/mosaic/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string       `json:"name"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Figures []jsonFigure `json:"figures"`
}

type jsonFigure struct {
	Color  [4]uint8  `json:"rgba"`
	Points [2][2]int `json:"points"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	g := tc.Gene
	jtc := jsonTestCase{
		Name:    category + "_" + tc.Name,
		Width:   g.Size.X,
		Height:  g.Size.Y,
		Figures: make([]jsonFigure, len(g.Figures)),
	}
	for i, f := range g.Figures {
		jtc.Figures[i] = figureToJSON(f)
	}
	return jtc
}

func figureToJSON(f mosaic.Figure) jsonFigure {
	c := f.Color
	return jsonFigure{
		Color: [4]uint8{c.R, c.G, c.B, c.A},
		Points: [2][2]int{
			{f.Points[0].X, f.Points[0].Y},
			{f.Points[1].X, f.Points[1].Y},
		},
	}
}
