package ballscript

// The AST is a pure data model: the parser produces it, the interpreter
// walks it, and nothing in it carries behavior beyond position access.

// Node is implemented by every AST node.
type Node interface {
	// Pos returns the 1-based line and column of the node's first token.
	Pos() (line, col int)
	aNode()
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	aExpr()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	aStmt()
}

type node struct {
	line int
	col  int
}

func (n *node) Pos() (int, int) { return n.line, n.col }
func (*node) aNode()            {}

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

// at stamps a node with a token's position.
func at(t Token) node { return node{line: t.Line, col: t.Col} }

// Program is a parsed top-level statement list.
type Program struct {
	Statements []Stmt
}

// ----------------------------------------------------------------------------
// Expressions

// NumberLit is a numeric literal.
type NumberLit struct {
	expr
	Value float64
}

// StringLit is a double-quoted string literal.
type StringLit struct {
	expr
	Value string
}

// Ident references a variable, function, or object friendly name.
type Ident struct {
	expr
	Name string
}

// SelfExpr is the implicit self reference available inside an object's
// collision script.
type SelfExpr struct {
	expr
}

// BinaryExpr applies an infix operator. Op is the operator's token kind,
// including TokHits for the collision predicate.
type BinaryExpr struct {
	expr
	X  Expr
	Op TokenKind
	Y  Expr
}

// UnaryExpr applies a prefix operator (only minus exists).
type UnaryExpr struct {
	expr
	Op TokenKind
	X  Expr
}

// CallExpr calls a built-in or user-defined function. Only bare names
// are callable.
type CallExpr struct {
	expr
	Name string
	Args []Expr
}

// CreateExpr constructs a game object. ObjectType is the written type
// tag ("ball", "square"); the generic form create(...) leaves it empty
// and takes the tag from the first argument at evaluation time.
type CreateExpr struct {
	expr
	ObjectType string
	Args       []Expr
}

// AssignExpr assigns to a bare identifier and yields the value.
type AssignExpr struct {
	expr
	Name  string
	Value Expr
}

// ----------------------------------------------------------------------------
// Statements

// ExprStmt wraps an expression evaluated for its value.
type ExprStmt struct {
	stmt
	X Expr
}

// LetStmt declares a variable; a missing initializer binds nil.
type LetStmt struct {
	stmt
	Name string
	Init Expr
}

// BlockStmt is an implicit statement block. Blocks have no closing
// delimiter: they end right before the next block-opening keyword or at
// end of input, exactly as written.
type BlockStmt struct {
	stmt
	List []Stmt
}

// IfStmt branches on a condition; Else is nil when absent.
type IfStmt struct {
	stmt
	Cond Expr
	Then *BlockStmt
	Else *BlockStmt
}

// WhileStmt loops while the condition stays truthy.
type WhileStmt struct {
	stmt
	Cond Expr
	Body *BlockStmt
}

// FuncStmt declares a named function in the same namespace as variables.
type FuncStmt struct {
	stmt
	Name   string
	Params []string
	Body   *BlockStmt
}

// ReturnStmt returns from the enclosing function; Value nil returns nil.
type ReturnStmt struct {
	stmt
	Value Expr
}

// SetDirectionStmt points a ball along one of the eight compass
// directions.
type SetDirectionStmt struct {
	stmt
	Target    string
	Direction TokenKind
}

// SetColorStmt recolors an object.
type SetColorStmt struct {
	stmt
	Target string
	Color  string
}

// SetSpeedStmt changes a ball's speed. A leading + or - sign makes the
// amount a relative delta; the negative delta keeps its folded unary
// minus.
type SetSpeedStmt struct {
	stmt
	Target   string
	Amount   Expr
	Relative bool
}

// LabelStmt sets a square's display label; empty text clears it. The
// optional parenthesized arguments are evaluated and reserved for the
// renderer.
type LabelStmt struct {
	stmt
	Target string
	Args   []Expr
	Text   string
}

// ScriptStmt asks the attached editor to open an object's script.
// Target keeps its dotted spelling as written.
type ScriptStmt struct {
	stmt
	Target string
	Args   []string
}

// PlayStmt starts the simulation, snapshotting or restoring the world.
type PlayStmt struct{ stmt }

// PauseStmt halts the simulation in place.
type PauseStmt struct{ stmt }

// StopStmt halts the simulation and rewinds to the saved snapshot.
type StopStmt struct{ stmt }

// VerboseStmt toggles verbose logging.
type VerboseStmt struct{ stmt }

// ClearBallsStmt removes every ball.
type ClearBallsStmt struct{ stmt }

// ClearSquaresStmt removes every square.
type ClearSquaresStmt struct{ stmt }

// DestroyStmt removes the object of the written type at a grid position.
type DestroyStmt struct {
	stmt
	ObjectType string
	Args       []Expr
}

// RunStmt loads a named script from the script source and executes it.
type RunStmt struct {
	stmt
	Name string
}

// SliceStmt plays a named audio slice sequence through the attached
// audio sink.
type SliceStmt struct {
	stmt
	Sequence string
}

// WaveformStmt shows the waveform view, optionally for one target.
type WaveformStmt struct {
	stmt
	Target string
}
