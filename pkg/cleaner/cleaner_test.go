package cleaner_test

import (
	"encoding/xml"
	"strings"
	"testing"

	"rastercontour/pkg/cleaner"
	"rastercontour/pkg/svgpath"
)

func TestMarshalRendersPathData(t *testing.T) {
	path := &cleaner.SVGXMLNode{
		XMLName: xml.Name{Local: "path"},
		Styles:  "fill:none;stroke:#000000",
		Path: []*svgpath.SubPath{
			{X: 0, Y: 0, DrawTo: []*svgpath.DrawTo{
				{Command: svgpath.LineTo, X: 1, Y: 1},
				{Command: svgpath.ClosePath},
			}},
		},
	}
	svg := &cleaner.SVGXMLNode{
		XMLName:  xml.Name{Local: "svg"},
		Children: []*cleaner.SVGXMLNode{path},
		Width:    "10",
		Height:   "10",
	}
	out, err := svg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `d="M 0 0 L 1 1 Z"`) {
		t.Errorf("Marshal output missing expected path data: %s", s)
	}
	if !strings.Contains(s, `style="fill:none;stroke:#000000"`) {
		t.Errorf("Marshal output missing style attribute: %s", s)
	}
}

func TestStyleAccessorsRoundTrip(t *testing.T) {
	n := &cleaner.SVGXMLNode{Styles: "fill:red;stroke:blue"}
	if got := n.Style("fill"); got != "red" {
		t.Errorf("Style(fill) = %q, want red", got)
	}
	n.SetStyle("fill", "green")
	if got := n.Style("fill"); got != "green" {
		t.Errorf("Style(fill) after SetStyle = %q, want green", got)
	}
	n.RemoveStyle("stroke")
	if got := n.Style("stroke"); got != "" {
		t.Errorf("Style(stroke) after RemoveStyle = %q, want empty", got)
	}
}

func TestParseAndFormatNumber(t *testing.T) {
	if got := cleaner.ParseNumber("3.5"); got != 3.5 {
		t.Errorf("ParseNumber(3.5) = %v, want 3.5", got)
	}
	if got := cleaner.FormatNumber(2); got != "2" {
		t.Errorf("FormatNumber(2) = %q, want \"2\"", got)
	}
}
