package tmx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

type xmlObjectGroup struct {
	Name    string      `xml:"name,attr"`
	Objects []xmlObject `xml:"object"`
}

type xmlObject struct {
	ID         string        `xml:"id,attr"`
	Name       string        `xml:"name,attr"`
	Type       string        `xml:"type,attr"`
	Class      string        `xml:"class,attr"`
	X          string        `xml:"x,attr"`
	Y          string        `xml:"y,attr"`
	Width      string        `xml:"width,attr"`
	Height     string        `xml:"height,attr"`
	Rotation   string        `xml:"rotation,attr"`
	Ellipse    *xmlMarker    `xml:"ellipse"`
	Point      *xmlMarker    `xml:"point"`
	Polygon    *xmlPoints    `xml:"polygon"`
	Polyline   *xmlPoints    `xml:"polyline"`
	Properties []xmlProperty `xml:"properties>property"`
}

type xmlMarker struct{}

type xmlPoints struct {
	Points string `xml:"points,attr"`
}

type xmlProperty struct {
	Name  string  `xml:"name,attr"`
	Value *string `xml:"value,attr"`
	Text  string  `xml:",chardata"`
}

// Parse reads a TMX document. Object groups are collected in document order,
// including groups nested inside <group> layers.
func Parse(data []byte) (*Map, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var m *Map
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Msg: "malformed markup", Err: err}
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "map":
			if m == nil {
				m = parseMapAttrs(start)
			}
		case "objectgroup":
			var og xmlObjectGroup
			if err := dec.DecodeElement(&og, &start); err != nil {
				return nil, &ParseError{Msg: "malformed objectgroup", Err: err}
			}
			if m == nil {
				continue
			}
			m.Layers = append(m.Layers, convertGroup(og))
		}
	}

	if m == nil {
		return nil, &ParseError{Msg: "missing <map>"}
	}
	return m, nil
}

func parseMapAttrs(start xml.StartElement) *Map {
	m := &Map{Orientation: "orthogonal"}
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "width":
			m.Width = int(num(attr.Value))
		case "height":
			m.Height = int(num(attr.Value))
		case "tilewidth":
			m.TileWidth = int(num(attr.Value))
		case "tileheight":
			m.TileHeight = int(num(attr.Value))
		case "orientation":
			if attr.Value != "" {
				m.Orientation = attr.Value
			}
		case "renderorder":
			m.RenderOrder = attr.Value
		case "infinite":
			m.Infinite = attr.Value == "1"
		}
	}
	return m
}

func convertGroup(og xmlObjectGroup) ObjectLayer {
	name := og.Name
	if name == "" {
		name = "Objects"
	}
	layer := ObjectLayer{Name: name, Objects: make([]Object, 0, len(og.Objects))}
	for _, xo := range og.Objects {
		layer.Objects = append(layer.Objects, convertObject(xo))
	}
	return layer
}

func convertObject(xo xmlObject) Object {
	typ := xo.Type
	if typ == "" {
		// Tiled 1.9 renamed the attribute.
		typ = xo.Class
	}

	o := Object{
		ID:         int(num(xo.ID)),
		Name:       xo.Name,
		Type:       typ,
		X:          num(xo.X),
		Y:          num(xo.Y),
		Width:      num(xo.Width),
		Height:     num(xo.Height),
		Rotation:   num(xo.Rotation),
		Shape:      ShapeRect,
		Properties: make(map[string]string, len(xo.Properties)),
	}

	if xo.Ellipse != nil {
		o.Shape = ShapeEllipse
	}
	if xo.Point != nil {
		o.Shape = ShapePoint
	}
	if xo.Polygon != nil {
		o.Shape = ShapePolygon
		o.Points = parsePoints(xo.Polygon.Points)
	}
	if xo.Polyline != nil {
		o.Shape = ShapePolyline
		o.Points = parsePoints(xo.Polyline.Points)
	}

	for _, p := range xo.Properties {
		if p.Name == "" {
			continue
		}
		if p.Value != nil {
			o.Properties[p.Name] = *p.Value
		} else {
			o.Properties[p.Name] = p.Text
		}
	}

	return o
}

// parsePoints reads Tiled's "x,y x,y" point lists.
func parsePoints(s string) []Point {
	fields := strings.Fields(s)
	pts := make([]Point, 0, len(fields))
	for _, pair := range fields {
		xs, ys, _ := strings.Cut(pair, ",")
		pts = append(pts, Point{X: num(xs), Y: num(ys)})
	}
	return pts
}

func num(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
