package svg2lottie

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Minimal view of an SVG document: path elements and the groups that
// may nest them. Only the d attribute matters to the converter.
type svgPath struct {
	ID string `xml:"id,attr"`
	D  string `xml:"d,attr"`
}

type svgGroup struct {
	Groups []svgGroup `xml:"g"`
	Paths  []svgPath  `xml:"path"`
}

type svgRoot struct {
	Groups []svgGroup `xml:"g"`
	Paths  []svgPath  `xml:"path"`
}

func collectPathData(paths []svgPath, groups []svgGroup) []string {
	var ds []string
	for _, p := range paths {
		if p.D != "" {
			ds = append(ds, p.D)
		}
	}
	for _, g := range groups {
		ds = append(ds, collectPathData(g.Paths, g.Groups)...)
	}
	return ds
}

// ConvertSvg extracts every path element's description from an SVG
// document, including paths nested in groups, and converts their
// combined subpaths into one animation document. Paths are interpreted
// leniently.
func ConvertSvg(doc string, cfg Config) (*Animation, error) {
	var root svgRoot
	if err := xml.Unmarshal([]byte(doc), &root); err != nil {
		return nil, fmt.Errorf("parsing svg document: %w", err)
	}
	var subpaths []*Subpath
	for _, d := range collectPathData(root.Paths, root.Groups) {
		subpaths = append(subpaths, ParsePath(d)...)
	}
	return buildDocument(subpaths, cfg), nil
}

// ConvertSvgFromReader is ConvertSvg over an io.Reader.
func ConvertSvgFromReader(r io.Reader, cfg Config) (*Animation, error) {
	var root svgRoot
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("parsing svg document: %w", err)
	}
	var subpaths []*Subpath
	for _, d := range collectPathData(root.Paths, root.Groups) {
		subpaths = append(subpaths, ParsePath(d)...)
	}
	return buildDocument(subpaths, cfg), nil
}
