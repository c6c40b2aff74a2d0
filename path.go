package svg2lottie

import "math"

// Tuple is an X,Y coordinate or vector.
type Tuple [2]float64

// Subpath is one contiguous contour of a path: an ordered list of
// anchor vertices, each with an in-tangent and an out-tangent stored
// relative to the vertex (controlPoint - vertex), and a closed flag.
// The three slices always have equal length; tangents default to the
// zero vector until a curve command sets them.
type Subpath struct {
	Vertices []Tuple
	In       []Tuple
	Out      []Tuple
	Closed   bool
}

// Tolerance for merging a closing vertex into the first vertex,
// absolute on both axes.
const closeMergeTolerance = 0.001

// pathInterpreter walks the token sequence and reconstructs subpaths
// with per-vertex bezier handles. The cursor starts at the origin; a
// moveto starts a new subpath which every following draw command
// mutates until the next moveto or end of input.
type pathInterpreter struct {
	x, y     float64
	current  *Subpath
	subpaths []*Subpath
	strict   bool
}

type cmdSpec struct {
	arity int
	apply func(*pathInterpreter, byte, []float64, int) error
}

var commands = map[byte]cmdSpec{
	'M': {2, (*pathInterpreter).moveTo},
	'm': {2, (*pathInterpreter).moveTo},
	'L': {2, (*pathInterpreter).lineTo},
	'l': {2, (*pathInterpreter).lineTo},
	'H': {1, (*pathInterpreter).lineTo},
	'h': {1, (*pathInterpreter).lineTo},
	'V': {1, (*pathInterpreter).lineTo},
	'v': {1, (*pathInterpreter).lineTo},
	'C': {6, (*pathInterpreter).cubicTo},
	'c': {6, (*pathInterpreter).cubicTo},
	'S': {4, (*pathInterpreter).smoothTo},
	's': {4, (*pathInterpreter).smoothTo},
}

// ParsePath interprets a path description into subpaths. It is
// lenient: unsupported commands (Q, T, A) are dropped, stray or
// truncated arguments are skipped, and the result reflects only the
// part of the path that was interpreted.
func ParsePath(d string) []*Subpath {
	in := &pathInterpreter{}
	in.run(Tokenize(d))
	return in.subpaths
}

// ParsePathStrict interprets a path description, failing with a
// *MalformedPathError or *UnsupportedCommandError at the first
// construct the converter cannot represent.
func ParsePathStrict(d string) ([]*Subpath, error) {
	tokens, err := tokenize(d, true)
	if err != nil {
		return nil, err
	}
	in := &pathInterpreter{strict: true}
	if err := in.run(tokens); err != nil {
		return nil, err
	}
	return in.subpaths, nil
}

func (in *pathInterpreter) run(tokens []Token) error {
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if tok.Type != TokenCommand {
			// A bare number here belongs to no consumable command:
			// either trailing garbage or an argument of an
			// unsupported command.
			if in.strict {
				return &MalformedPathError{Offset: tok.offset, Reason: "number without a command"}
			}
			i++
			continue
		}

		cmd := tok.Cmd
		i++
		switch cmd {
		case 'Z', 'z':
			if err := in.closePath(cmd, tok.offset); err != nil {
				return err
			}
			continue
		case 'Q', 'q', 'T', 't', 'A', 'a':
			if in.strict {
				return &UnsupportedCommandError{Offset: tok.offset, Cmd: cmd}
			}
			// No conversion exists; the trailing numbers are skipped
			// one at a time above.
			continue
		}

		spec := commands[cmd]
		applied := false
		for {
			args, ok := takeNumbers(tokens, i, spec.arity)
			if !ok {
				break
			}
			if err := spec.apply(in, cmd, args, tok.offset); err != nil {
				return err
			}
			i += spec.arity
			applied = true
			// Coordinate pairs following a moveto are implicit
			// linetos; every other command repeats itself.
			switch cmd {
			case 'M':
				cmd = 'L'
				spec = commands[cmd]
			case 'm':
				cmd = 'l'
				spec = commands[cmd]
			}
		}
		if in.strict && (!applied || (i < len(tokens) && tokens[i].Type == TokenNumber)) {
			return &MalformedPathError{Offset: tok.offset, Cmd: cmd, Reason: "truncated argument list"}
		}
	}
	return nil
}

// takeNumbers returns the next n tokens as numbers, or false if fewer
// than n numeric tokens follow.
func takeNumbers(tokens []Token, i, n int) ([]float64, bool) {
	if i+n > len(tokens) {
		return nil, false
	}
	args := make([]float64, n)
	for k := 0; k < n; k++ {
		if tokens[i+k].Type != TokenNumber {
			return nil, false
		}
		args[k] = tokens[i+k].Value
	}
	return args, true
}

// orphan handles a draw command seen before any moveto.
func (in *pathInterpreter) orphan(cmd byte, off int) error {
	if in.strict {
		return &MalformedPathError{Offset: off, Cmd: cmd, Reason: "draw command before any moveto"}
	}
	return nil
}

func (in *pathInterpreter) moveTo(cmd byte, a []float64, off int) error {
	x, y := a[0], a[1]
	if cmd == 'm' {
		x += in.x
		y += in.y
	}
	sp := &Subpath{
		Vertices: []Tuple{{x, y}},
		In:       []Tuple{{}},
		Out:      []Tuple{{}},
	}
	in.subpaths = append(in.subpaths, sp)
	in.current = sp
	in.x, in.y = x, y
	return nil
}

func (in *pathInterpreter) lineTo(cmd byte, a []float64, off int) error {
	if in.current == nil {
		return in.orphan(cmd, off)
	}
	x, y := in.x, in.y
	switch cmd {
	case 'L':
		x, y = a[0], a[1]
	case 'l':
		x, y = in.x+a[0], in.y+a[1]
	case 'H':
		x = a[0]
	case 'h':
		x = in.x + a[0]
	case 'V':
		y = a[0]
	case 'v':
		y = in.y + a[0]
	}
	sp := in.current
	// A straight segment carries no handles on either end.
	sp.Out[len(sp.Out)-1] = Tuple{}
	sp.Vertices = append(sp.Vertices, Tuple{x, y})
	sp.In = append(sp.In, Tuple{})
	sp.Out = append(sp.Out, Tuple{})
	in.x, in.y = x, y
	return nil
}

func (in *pathInterpreter) cubicTo(cmd byte, a []float64, off int) error {
	if in.current == nil {
		return in.orphan(cmd, off)
	}
	c1x, c1y, c2x, c2y, x, y := a[0], a[1], a[2], a[3], a[4], a[5]
	if cmd == 'c' {
		c1x += in.x
		c1y += in.y
		c2x += in.x
		c2y += in.y
		x += in.x
		y += in.y
	}
	in.appendCurve(c1x, c1y, c2x, c2y, x, y)
	return nil
}

// smoothTo derives the missing first control point by reflecting the
// current vertex's in-tangent about the vertex.
func (in *pathInterpreter) smoothTo(cmd byte, a []float64, off int) error {
	if in.current == nil {
		return in.orphan(cmd, off)
	}
	c2x, c2y, x, y := a[0], a[1], a[2], a[3]
	if cmd == 's' {
		c2x += in.x
		c2y += in.y
		x += in.x
		y += in.y
	}
	sp := in.current
	n := len(sp.Vertices) - 1
	v, t := sp.Vertices[n], sp.In[n]
	in.appendCurve(v[0]-t[0], v[1]-t[1], c2x, c2y, x, y)
	return nil
}

func (in *pathInterpreter) appendCurve(c1x, c1y, c2x, c2y, x, y float64) {
	sp := in.current
	n := len(sp.Vertices) - 1
	prev := sp.Vertices[n]
	sp.Out[n] = Tuple{c1x - prev[0], c1y - prev[1]}
	sp.Vertices = append(sp.Vertices, Tuple{x, y})
	sp.In = append(sp.In, Tuple{c2x - x, c2y - y})
	sp.Out = append(sp.Out, Tuple{})
	in.x, in.y = x, y
}

// closePath marks the current subpath closed. When the last vertex
// revisits the first within the merge tolerance, the duplicate is
// folded into vertex 0, which inherits its in-tangent. The cursor
// returns to the subpath's first vertex.
func (in *pathInterpreter) closePath(cmd byte, off int) error {
	sp := in.current
	if sp == nil {
		return in.orphan(cmd, off)
	}
	sp.Closed = true
	n := len(sp.Vertices) - 1
	if n > 0 {
		first, last := sp.Vertices[0], sp.Vertices[n]
		if math.Abs(first[0]-last[0]) <= closeMergeTolerance &&
			math.Abs(first[1]-last[1]) <= closeMergeTolerance {
			sp.In[0] = sp.In[n]
			sp.Vertices = sp.Vertices[:n]
			sp.In = sp.In[:n]
			sp.Out = sp.Out[:n]
		}
	}
	in.x, in.y = sp.Vertices[0][0], sp.Vertices[0][1]
	return nil
}
