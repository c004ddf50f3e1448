package scenefile

// The document types below map one-to-one onto the YAML keys. Optional
// numbers are pointers so that an absent key can fall back to its default.

type sceneDoc struct {
	Width               float64   `yaml:"width"`
	Height              float64   `yaml:"height"`
	ViewBox             string    `yaml:"viewBox"`
	PreserveAspectRatio string    `yaml:"preserveAspectRatio"`
	Defs                defsDoc   `yaml:"defs"`
	Children            []nodeDoc `yaml:"children"`
}

type defsDoc struct {
	Gradients []gradientDoc `yaml:"gradients"`
	Patterns  []patternDoc  `yaml:"patterns"`
	ClipPaths []clipPathDoc `yaml:"clipPaths"`
	Masks     []maskDoc     `yaml:"masks"`
	Filters   []filterDoc   `yaml:"filters"`
}

// styleDoc holds the inheritable presentation attributes.
type styleDoc struct {
	Fill             *string   `yaml:"fill"`
	FillOpacity      *float64  `yaml:"fillOpacity"`
	FillRule         *string   `yaml:"fillRule"`
	Stroke           *string   `yaml:"stroke"`
	StrokeOpacity    *float64  `yaml:"strokeOpacity"`
	StrokeWidth      *float64  `yaml:"strokeWidth"`
	StrokeLinecap    *string   `yaml:"strokeLinecap"`
	StrokeLinejoin   *string   `yaml:"strokeLinejoin"`
	StrokeMiterlimit *float64  `yaml:"strokeMiterlimit"`
	StrokeDasharray  []float64 `yaml:"strokeDasharray"`
	StrokeDashoffset *float64  `yaml:"strokeDashoffset"`
	ShapeRendering   *string   `yaml:"shapeRendering"`
	ImageRendering   *string   `yaml:"imageRendering"`
}

type nodeDoc struct {
	Type      string `yaml:"type"`
	ID        string `yaml:"id"`
	Transform string `yaml:"transform"`

	Opacity  *float64 `yaml:"opacity"`
	Blend    string   `yaml:"blend"`
	ClipPath string   `yaml:"clipPath"`
	Mask     string   `yaml:"mask"`
	Filter   []string `yaml:"filter"`

	styleDoc `yaml:",inline"`

	Children []nodeDoc `yaml:"children"`

	D      string      `yaml:"d"`
	Points [][]float64 `yaml:"points"`
	X      float64     `yaml:"x"`
	Y      float64     `yaml:"y"`
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	RX     *float64    `yaml:"rx"`
	RY     *float64    `yaml:"ry"`
	CX     float64     `yaml:"cx"`
	CY     float64     `yaml:"cy"`
	R      float64     `yaml:"r"`
	X1     float64     `yaml:"x1"`
	Y1     float64     `yaml:"y1"`
	X2     float64     `yaml:"x2"`
	Y2     float64     `yaml:"y2"`

	Href                string `yaml:"href"`
	PreserveAspectRatio string `yaml:"preserveAspectRatio"`
}

type stopDoc struct {
	Offset  float64  `yaml:"offset"`
	Color   string   `yaml:"color"`
	Opacity *float64 `yaml:"opacity"`
}

type gradientDoc struct {
	ID        string    `yaml:"id"`
	Type      string    `yaml:"type"`
	Units     string    `yaml:"units"`
	Transform string    `yaml:"transform"`
	Spread    string    `yaml:"spread"`
	Stops     []stopDoc `yaml:"stops"`

	X1 *float64 `yaml:"x1"`
	Y1 *float64 `yaml:"y1"`
	X2 *float64 `yaml:"x2"`
	Y2 *float64 `yaml:"y2"`

	CX *float64 `yaml:"cx"`
	CY *float64 `yaml:"cy"`
	R  *float64 `yaml:"r"`
	FX *float64 `yaml:"fx"`
	FY *float64 `yaml:"fy"`
	FR *float64 `yaml:"fr"`
}

type patternDoc struct {
	ID                  string    `yaml:"id"`
	Units               string    `yaml:"units"`
	ContentUnits        string    `yaml:"contentUnits"`
	Transform           string    `yaml:"transform"`
	X                   float64   `yaml:"x"`
	Y                   float64   `yaml:"y"`
	Width               float64   `yaml:"width"`
	Height              float64   `yaml:"height"`
	ViewBox             string    `yaml:"viewBox"`
	PreserveAspectRatio string    `yaml:"preserveAspectRatio"`
	Children            []nodeDoc `yaml:"children"`
}

type clipPathDoc struct {
	ID        string    `yaml:"id"`
	Units     string    `yaml:"units"`
	Transform string    `yaml:"transform"`
	ClipPath  string    `yaml:"clipPath"`
	Children  []nodeDoc `yaml:"children"`
}

type maskDoc struct {
	ID           string    `yaml:"id"`
	Units        string    `yaml:"units"`
	ContentUnits string    `yaml:"contentUnits"`
	Type         string    `yaml:"type"`
	X            *float64  `yaml:"x"`
	Y            *float64  `yaml:"y"`
	Width        *float64  `yaml:"width"`
	Height       *float64  `yaml:"height"`
	Mask         string    `yaml:"mask"`
	Children     []nodeDoc `yaml:"children"`
}

type filterDoc struct {
	ID             string         `yaml:"id"`
	Units          string         `yaml:"units"`
	PrimitiveUnits string         `yaml:"primitiveUnits"`
	X              *float64       `yaml:"x"`
	Y              *float64       `yaml:"y"`
	Width          *float64       `yaml:"width"`
	Height         *float64       `yaml:"height"`
	Primitives     []primitiveDoc `yaml:"primitives"`
}

type transferDoc struct {
	Type        string    `yaml:"type"`
	TableValues []float64 `yaml:"tableValues"`
	Slope       *float64  `yaml:"slope"`
	Intercept   float64   `yaml:"intercept"`
	Amplitude   *float64  `yaml:"amplitude"`
	Exponent    *float64  `yaml:"exponent"`
	Offset      float64   `yaml:"offset"`
}

type primitiveDoc struct {
	Type               string   `yaml:"type"`
	In                 string   `yaml:"in"`
	In2                string   `yaml:"in2"`
	Inputs             []string `yaml:"inputs"`
	Result             string   `yaml:"result"`
	ColorInterpolation string   `yaml:"colorInterpolation"`

	X      *float64 `yaml:"x"`
	Y      *float64 `yaml:"y"`
	Width  *float64 `yaml:"width"`
	Height *float64 `yaml:"height"`

	StdDeviation []float64 `yaml:"stdDeviation"`
	Radius       []float64 `yaml:"radius"`
	DX           float64   `yaml:"dx"`
	DY           float64   `yaml:"dy"`

	Color   string   `yaml:"color"`
	Opacity *float64 `yaml:"opacity"`

	MatrixType string    `yaml:"matrixType"`
	Values     []float64 `yaml:"values"`

	FuncR *transferDoc `yaml:"funcR"`
	FuncG *transferDoc `yaml:"funcG"`
	FuncB *transferDoc `yaml:"funcB"`
	FuncA *transferDoc `yaml:"funcA"`

	Operator string  `yaml:"operator"`
	K1       float64 `yaml:"k1"`
	K2       float64 `yaml:"k2"`
	K3       float64 `yaml:"k3"`
	K4       float64 `yaml:"k4"`
	Mode     string  `yaml:"mode"`
}
