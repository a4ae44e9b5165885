package cleaner

import (
	"encoding/xml"
	"strconv"

	"rastercontour/pkg/svgpath"
)

// SVGXMLNode is the tree the export package builds and serializes. It
// carries a Path field alongside the D attribute string: callers build
// paths as []*svgpath.SubPath and Marshal renders them to D, rather than
// composing path-data strings by hand.
type SVGXMLNode struct {
	XMLName  xml.Name
	Width    string        `xml:"width,attr,omitempty"`
	Height   string        `xml:"height,attr,omitempty"`
	ViewBox  string        `xml:"viewBox,attr,omitempty"`
	Version  string        `xml:"version,attr,omitempty"`
	ID       string        `xml:"id,attr,omitempty"`
	Styles   string        `xml:"style,attr,omitempty"`
	D        string        `xml:"d,attr,omitempty"`
	Children []*SVGXMLNode `xml:",any"`

	Path []*svgpath.SubPath `xml:"-"`

	style          map[string]string
	styleNameOrder map[string]int
}

func (n *SVGXMLNode) Marshal() ([]byte, error) {
	for _, child := range n.Children {
		if child.Path != nil {
			child.D = svgpath.ToString(child.Path)
		}
		child.serializeStyle()
		// SVG namespace at root is enough.
		child.XMLName.Space = ""
	}
	return xml.MarshalIndent(n, "", "  ")
}

func ParseNumber(n string) float64 {
	val, _ := strconv.ParseFloat(n, 64)
	return val
}

func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
