package mapstyle

// Expression is a MapLibre style expression: an operator name followed by
// its arguments. It encodes to the JSON array form the renderer expects.
type Expression []any

// Operator returns the expression's operator, or "" for an empty expression.
func (e Expression) Operator() string {
	if len(e) == 0 {
		return ""
	}
	op, _ := e[0].(string)
	return op
}

// Get reads a feature property.
func Get(property string) Expression {
	return Expression{"get", property}
}

// Eq compares two values for equality.
func Eq(a, b any) Expression {
	return Expression{"==", a, b}
}

// Zoom is the current map zoom level.
func Zoom() Expression {
	return Expression{"zoom"}
}

// Linear is the linear interpolation type.
func Linear() Expression {
	return Expression{"linear"}
}

// Branch is one condition/output pair of a case expression.
type Branch struct {
	When Expression
	Then any
}

// Case picks the output of the first branch whose condition holds, or
// fallback when none does.
func Case(fallback any, branches ...Branch) Expression {
	expr := make(Expression, 0, 2+2*len(branches))
	expr = append(expr, "case")
	for _, b := range branches {
		expr = append(expr, b.When, b.Then)
	}
	return append(expr, fallback)
}

// Stop is an interpolation control point.
type Stop struct {
	Input  float64
	Output any
}

// Interpolate produces continuous output between stops.
func Interpolate(interpolation, input Expression, stops ...Stop) Expression {
	expr := make(Expression, 0, 3+2*len(stops))
	expr = append(expr, "interpolate", interpolation, input)
	for _, s := range stops {
		expr = append(expr, s.Input, s.Output)
	}
	return expr
}

// Match maps a feature property value to a configuration option.
type Match struct {
	Property string
	Value    string
	Option   string
}

// LanduseMatches is the landuse color table, tried in order.
var LanduseMatches = []Match{
	{Property: "landuse", Value: "beach", Option: OptBeach},
	{Property: "landuse", Value: "earth", Option: OptEarth},
	{Property: "landuse", Value: "protected_area", Option: OptProtected},
	{Property: "natural", Value: "beach", Option: OptBeach},
	{Property: "natural", Value: "protected_area", Option: OptProtected},
}

// SeamarkMatches is the seamark color table, tried in order.
var SeamarkMatches = []Match{
	{Property: "seamark_type", Value: "buoy", Option: OptBuoy},
	{Property: "seamark_type", Value: "beacon", Option: OptBeacon},
	{Property: "seamark_type", Value: "light", Option: OptLight},
}

// matchCase builds a case expression from a match table, resolving outputs
// from section and falling back to its default option.
func matchCase(section Section, matches []Match) Expression {
	branches := make([]Branch, len(matches))
	for i, m := range matches {
		branches[i] = Branch{
			When: Eq(Get(m.Property), m.Value),
			Then: section[m.Option],
		}
	}
	return Case(section[OptDefault], branches...)
}
