// Package tmx reads the object layers of Tiled TMX maps.
package tmx

// Shape is the geometry an object was drawn with in the editor.
type Shape string

const (
	ShapeRect     Shape = "rect"
	ShapeEllipse  Shape = "ellipse"
	ShapePoint    Shape = "point"
	ShapePolygon  Shape = "polygon"
	ShapePolyline Shape = "polyline"
)

// Map is the parsed description of a level map. Only object layers are kept.
type Map struct {
	Width       int
	Height      int
	TileWidth   int
	TileHeight  int
	Orientation string
	RenderOrder string
	Infinite    bool
	Layers      []ObjectLayer
}

// ObjectLayer is one <objectgroup> with its objects in document order.
type ObjectLayer struct {
	Name    string
	Objects []Object
}

// Object is a single map object. Coordinates are in map pixels.
type Object struct {
	ID         int
	Name       string
	Type       string
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Rotation   float64
	Shape      Shape
	Points     []Point
	Properties map[string]string
}

type Point struct {
	X float64
	Y float64
}

// Objects returns every object of every layer, layer order first.
func (m *Map) Objects() []Object {
	if m == nil {
		return nil
	}
	n := 0
	for _, ly := range m.Layers {
		n += len(ly.Objects)
	}
	out := make([]Object, 0, n)
	for _, ly := range m.Layers {
		out = append(out, ly.Objects...)
	}
	return out
}

// Center returns the pixel centre of the object's bounding box.
func (o Object) Center() (float64, float64) {
	return o.X + o.Width/2, o.Y + o.Height/2
}

// HasArea reports whether the object can form a box.
func (o Object) HasArea() bool {
	return o.Width != 0 && o.Height != 0
}
