package scenefile

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggsvg/geom"
	"github.com/gogpu/ggsvg/tree"
)

// Option configures decoding.
type Option func(*decoder)

// WithBaseDir sets the directory that relative image references are
// resolved against. Load defaults it to the scene file's directory,
// Decode to the working directory.
func WithBaseDir(dir string) Option {
	return func(d *decoder) {
		d.dir = dir
	}
}

// Load reads and decodes the scene file at path.
func Load(path string, opts ...Option) (*tree.Tree, error) {
	d := newDecoder(append([]Option{WithBaseDir(filepath.Dir(path))}, opts...)...)
	return d.load(path)
}

// Decode reads one YAML scene document from r. Unknown keys are errors.
func Decode(r io.Reader, opts ...Option) (*tree.Tree, error) {
	return newDecoder(opts...).decode(r)
}

// shared is the state common to a scene and the scenes it embeds.
type shared struct {
	loading map[string]bool
	images  map[string]image.Image
}

type decoder struct {
	dir string
	*shared

	viewport geom.Rect

	gradients map[string]*gradientDoc
	patterns  map[string]*patternDoc
	clipPaths map[string]*clipPathDoc
	masks     map[string]*maskDoc
	filters   map[string]*filterDoc

	// Resolved definitions. Filters are resolved per element since their
	// region depends on its bounding box.
	paints    map[string]tree.Paint
	clips     map[string]*tree.ClipPath
	maskCache map[string]*tree.Mask
	resolving map[string]bool
}

func newDecoder(opts ...Option) *decoder {
	d := &decoder{
		shared: &shared{
			loading: make(map[string]bool),
			images:  make(map[string]image.Image),
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// child returns a decoder for an embedded scene in dir.
func (d *decoder) child(dir string) *decoder {
	return &decoder{dir: dir, shared: d.shared}
}

func (d *decoder) load(path string) (*tree.Tree, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if d.loading[abs] {
		return nil, fmt.Errorf("%w: %s", ErrCycle, path)
	}
	d.loading[abs] = true
	defer delete(d.loading, abs)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := d.decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (d *decoder) decode(r io.Reader) (*tree.Tree, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc sceneDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidValue)
		}
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	return d.build(&doc)
}

func (d *decoder) build(doc *sceneDoc) (*tree.Tree, error) {
	size := geom.Size{Width: doc.Width, Height: doc.Height}
	if !size.IsValid() {
		return nil, &Error{Path: "size", Err: invalid("size", fmt.Sprintf("%gx%g", doc.Width, doc.Height))}
	}
	t := &tree.Tree{Size: size}

	vb := tree.ViewBox{Rect: geom.RectXYWH(0, 0, size.Width, size.Height), Aspect: tree.DefaultAspectRatio()}
	if doc.ViewBox != "" {
		r, err := parseViewBox(doc.ViewBox)
		if err != nil {
			return nil, &Error{Path: "viewBox", Err: err}
		}
		vb.Rect = r
	}
	if doc.PreserveAspectRatio != "" {
		ar, ok := tree.ParseAspectRatio(doc.PreserveAspectRatio)
		if !ok {
			return nil, &Error{Path: "preserveAspectRatio", Err: invalid("preserveAspectRatio", doc.PreserveAspectRatio)}
		}
		vb.Aspect = ar
	}
	t.ViewBox = vb
	d.viewport = vb.Rect

	if err := d.index(&doc.Defs); err != nil {
		return nil, err
	}
	children, err := d.nodes(doc.Children, defaultStyle(), "children")
	if err != nil {
		return nil, err
	}
	t.Children = children
	return t, nil
}

func parseViewBox(s string) (geom.Rect, error) {
	v, err := parseNumbers(s)
	if err != nil || len(v) != 4 || v[2] <= 0 || v[3] <= 0 {
		return geom.Rect{}, invalid("viewBox", s)
	}
	return geom.RectXYWH(v[0], v[1], v[2], v[3]), nil
}

// index registers every definition by id.
func (d *decoder) index(defs *defsDoc) error {
	d.gradients = make(map[string]*gradientDoc)
	d.patterns = make(map[string]*patternDoc)
	d.clipPaths = make(map[string]*clipPathDoc)
	d.masks = make(map[string]*maskDoc)
	d.filters = make(map[string]*filterDoc)
	d.paints = make(map[string]tree.Paint)
	d.clips = make(map[string]*tree.ClipPath)
	d.maskCache = make(map[string]*tree.Mask)
	d.resolving = make(map[string]bool)

	seen := make(map[string]bool)
	add := func(kind, id string) error {
		if id == "" {
			return &Error{Path: "defs." + kind, Err: fmt.Errorf("%w: missing id", ErrInvalidValue)}
		}
		if seen[id] {
			return &Error{Path: "defs." + kind, Err: fmt.Errorf("%w: duplicate id %q", ErrInvalidValue, id)}
		}
		seen[id] = true
		return nil
	}
	for i := range defs.Gradients {
		g := &defs.Gradients[i]
		if err := add("gradients", g.ID); err != nil {
			return err
		}
		d.gradients[g.ID] = g
	}
	for i := range defs.Patterns {
		p := &defs.Patterns[i]
		if err := add("patterns", p.ID); err != nil {
			return err
		}
		d.patterns[p.ID] = p
	}
	for i := range defs.ClipPaths {
		c := &defs.ClipPaths[i]
		if err := add("clipPaths", c.ID); err != nil {
			return err
		}
		d.clipPaths[c.ID] = c
	}
	for i := range defs.Masks {
		m := &defs.Masks[i]
		if err := add("masks", m.ID); err != nil {
			return err
		}
		d.masks[m.ID] = m
	}
	for i := range defs.Filters {
		f := &defs.Filters[i]
		if err := add("filters", f.ID); err != nil {
			return err
		}
		d.filters[f.ID] = f
	}
	return nil
}

// refID extracts the id from "url(#id)", "#id" or a bare "id".
func refID(s string) string {
	s = strings.TrimSpace(s)
	if inner, ok := strings.CutPrefix(s, "url("); ok {
		s = strings.TrimSuffix(inner, ")")
	}
	return strings.TrimPrefix(strings.TrimSpace(s), "#")
}

// enter marks key as being resolved and reports a cycle if it already is.
func (d *decoder) enter(key string) error {
	if d.resolving[key] {
		return fmt.Errorf("%w: %s", ErrCycle, key)
	}
	d.resolving[key] = true
	return nil
}

func (d *decoder) leave(key string) {
	delete(d.resolving, key)
}

func parseUnits(s string, def tree.Units) (tree.Units, error) {
	switch s {
	case "":
		return def, nil
	case "userSpaceOnUse":
		return tree.UserSpaceOnUse, nil
	case "objectBoundingBox":
		return tree.ObjectBoundingBox, nil
	}
	return def, invalid("units", s)
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
