// Package modelfile parses the textual constraint model format and
// lowers it onto a csp.Model. A model file declares variables with
// their initial bounds and lists the constraints between them:
//
//	# two tasks, one machine
//	var x in -2..255
//	var y in 0..128
//	x < y + 3
//	x != 42
//	y >= 10
//
// Lines starting with '#' are comments. The right-hand side of a
// constraint is either another variable, optionally with an integer
// offset, or a constant.
package modelfile

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gitrdm/gocsp/pkg/csp"
)

var modelLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "Range", Pattern: `\.\.`},
		{Name: "Op", Pattern: `!=|<=|>=|=|<|>`},
		{Name: "Arith", Pattern: `[+-]`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	},
})

var parser = buildParser()

func buildParser() *participle.Parser[File] {
	p, err := participle.Build[File](
		participle.Lexer(modelLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}
	return p
}

// File is the parsed form of a model file.
type File struct {
	Statements []*Statement `parser:"@@*"`
}

// Statement is either a variable declaration or a constraint.
type Statement struct {
	Pos lexer.Position

	Var        *VarDecl        `parser:"  @@"`
	Constraint *ConstraintDecl `parser:"| @@"`
}

// VarDecl declares a variable with its initial bounds:
// "var x in -2..255".
type VarDecl struct {
	Name string    `parser:"'var' @Ident"`
	Min  signedInt `parser:"'in' @@"`
	Max  signedInt `parser:"'..' @@"`
}

// ConstraintDecl relates a variable to a variable-with-offset or a
// constant: "x <= y + 3", "x != 42".
type ConstraintDecl struct {
	Left  string   `parser:"@Ident"`
	Op    string   `parser:"@Op"`
	Right *Operand `parser:"@@"`
}

// Operand is the right-hand side of a constraint.
type Operand struct {
	Const *signedInt `parser:"  @@"`
	Var   string     `parser:"| @Ident"`
	Sign  string     `parser:"  ( @Arith"`
	Off   int        `parser:"    @Int )?"`
}

// signedInt is an integer literal with an optional leading minus.
type signedInt struct {
	Neg   bool `parser:"@'-'?"`
	Value int  `parser:"@Int"`
}

func (s signedInt) value() int {
	if s.Neg {
		return -s.Value
	}
	return s.Value
}

// offset returns the operand's integer offset ("y + 3" -> 3,
// "y - 3" -> -3, bare "y" -> 0).
func (o *Operand) offset() int {
	if o.Sign == "-" {
		return -o.Off
	}
	return o.Off
}

// Parse parses model source. The name is used in error positions.
func Parse(name, source string) (*File, error) {
	return parser.ParseString(name, source)
}

// ParseFile reads and parses a model file from disk.
func ParseFile(path string) (*File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(path, string(source))
}

// Build declares every variable and posts every constraint onto the
// model, in file order, propagating as it goes. It returns the declared
// variables by name. Posting stops at the first inconsistency; the
// partially narrowed model is left as-is for inspection.
func (f *File) Build(m *csp.Model) (map[string]*csp.Variable, error) {
	vars := make(map[string]*csp.Variable)
	for _, st := range f.Statements {
		switch {
		case st.Var != nil:
			if _, ok := vars[st.Var.Name]; ok {
				return nil, fmt.Errorf("%s: variable %q already declared", st.Pos, st.Var.Name)
			}
			v, err := m.NewVariable(st.Var.Min.value(), st.Var.Max.value(), st.Var.Name)
			if err != nil {
				return nil, fmt.Errorf("%s: variable %q: %w", st.Pos, st.Var.Name, err)
			}
			vars[st.Var.Name] = v
		case st.Constraint != nil:
			c, err := st.Constraint.lower(vars)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", st.Pos, err)
			}
			if err := m.Post(c); err != nil {
				return nil, fmt.Errorf("%s: %w", st.Pos, err)
			}
		}
	}
	return vars, nil
}

// lower resolves names and picks the constraint for the operator.
func (cd *ConstraintDecl) lower(vars map[string]*csp.Variable) (csp.Constraint, error) {
	x, ok := vars[cd.Left]
	if !ok {
		return nil, fmt.Errorf("unknown variable %q", cd.Left)
	}
	if cd.Right.Var != "" {
		y, ok := vars[cd.Right.Var]
		if !ok {
			return nil, fmt.Errorf("unknown variable %q", cd.Right.Var)
		}
		c := cd.Right.offset()
		switch cd.Op {
		case "<":
			return csp.LtXYC(x, y, c), nil
		case "<=":
			return csp.LeXYC(x, y, c), nil
		case ">":
			return csp.GtXYC(x, y, c), nil
		case ">=":
			return csp.GeXYC(x, y, c), nil
		case "=":
			return csp.EqXYC(x, y, c), nil
		case "!=":
			return csp.NeqXYC(x, y, c), nil
		}
	} else if cd.Right.Const != nil {
		k := cd.Right.Const.value()
		switch cd.Op {
		case "<":
			return csp.LtXC(x, k), nil
		case "<=":
			return csp.LeXC(x, k), nil
		case ">":
			return csp.GtXC(x, k), nil
		case ">=":
			return csp.GeXC(x, k), nil
		case "=":
			return csp.EqXC(x, k), nil
		case "!=":
			return csp.NeqXC(x, k), nil
		}
	}
	return nil, fmt.Errorf("unsupported operator %q", cd.Op)
}
