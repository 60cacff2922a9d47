package Render

// Side of a vertex relative to its parent.
type Side uint8

const (
	Root Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "root"
	}
}

// Vertex is a node record of the graph. Hidden vertices stand in for absent
// children so the hierarchical layout keeps the spacing of a complete tree.
type Vertex struct {
	ID     string `json:"id"`
	Label  string `json:"label,omitempty"`
	Shape  string `json:"shape,omitempty"`
	Level  int    `json:"level"`
	Title  string `json:"title,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
	Side   Side   `json:"-"`
}

// Edge points from a parent vertex to a child vertex.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Hidden bool   `json:"hidden,omitempty"`
}

// FontOptions sets the label font, Size in pixels.
type FontOptions struct {
	Size int `json:"size"`
}

// NodeOptions apply to every vertex.
type NodeOptions struct {
	Font FontOptions `json:"font"`
}

// ArrowOptions draw an arrow head at the child end of an edge when To.Enabled.
type ArrowOptions struct {
	To struct {
		Enabled bool `json:"enabled"`
	} `json:"to"`
}

// EdgeOptions apply to every edge. Color.Inherit takes the color of the
// parent vertex and Smooth bends the lines.
type EdgeOptions struct {
	Arrows ArrowOptions `json:"arrows"`
	Color  struct {
		Inherit bool `json:"inherit"`
	} `json:"color"`
	Smooth bool `json:"smooth"`
}

// LayoutOptions turn on the hierarchical layout, SortMethod "directed" puts
// parents above children.
type LayoutOptions struct {
	Hierarchical struct {
		Enabled    bool   `json:"enabled"`
		SortMethod string `json:"sortMethod"`
	} `json:"hierarchical"`
}

// PhysicsOptions pick the solver that moves vertices until they settle.
type PhysicsOptions struct {
	HierarchicalRepulsion struct {
		CentralGravity float64 `json:"centralGravity"`
		SpringConstant float64 `json:"springConstant"`
		NodeDistance   int     `json:"nodeDistance"`
	} `json:"hierarchicalRepulsion"`
	MinVelocity float64 `json:"minVelocity"`
	Solver      string  `json:"solver"`
}

// ConfigureOptions show the vis-network settings panel, limited to Filter.
type ConfigureOptions struct {
	Enabled bool   `json:"enabled"`
	Filter  string `json:"filter"`
}

// Options is the vis-network configuration of the rendered page.
type Options struct {
	Nodes     NodeOptions      `json:"nodes"`
	Edges     EdgeOptions      `json:"edges"`
	Layout    LayoutOptions    `json:"layout"`
	Physics   PhysicsOptions   `json:"physics"`
	Configure ConfigureOptions `json:"configure"`
}

// DefaultOptions lays the tree out top down with arrows pointing to the
// children, tuned for readability.
func DefaultOptions() Options {
	var o Options
	o.Nodes.Font.Size = 40
	o.Edges.Arrows.To.Enabled = true
	o.Edges.Color.Inherit = true
	o.Layout.Hierarchical.Enabled = true
	o.Layout.Hierarchical.SortMethod = "directed"
	o.Physics.HierarchicalRepulsion.SpringConstant = 0.2
	o.Physics.HierarchicalRepulsion.NodeDistance = 80
	o.Physics.MinVelocity = 0.75
	o.Physics.Solver = "hierarchicalRepulsion"
	o.Configure.Enabled = true
	o.Configure.Filter = "layout,physics"
	return o
}

// Graph is everything a Presenter needs to draw a tree.
// Vertices are in depth first order, left before right, with the root first.
type Graph struct {
	Heading  string
	Vertices []Vertex
	Edges    []Edge
	Options  Options
}
