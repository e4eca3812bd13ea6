package basic

// The program tree follows the Tiny BASIC grammar:
//
//	line ::= number statement CR | statement CR
//	statement ::= PRINT expr-list
//	              IF expression relop expression THEN statement
//	              GOTO expression
//	              INPUT var-list
//	              LET var = expression
//	              GOSUB expression
//	              RETURN | CLEAR | LIST | RUN | END
//	expr-list ::= (string|expression) (, (string|expression))*
//	var-list ::= var (, var)*
//	expression ::= (+|-|e) term ((+|-) term)*
//	term ::= factor ((*|/) factor)*
//	factor ::= var | number

type Node interface {
	Walk(Visitor)
}

type Visitor interface {
	Enter(Node)
	Exit(Node)
}

// Program is an ordered list of lines plus an index of the numbered ones.
type Program struct {
	Lines []*Line

	// NumberedLines maps a line number to its line.  A repeated line
	// number overwrites the previous entry; the ordered list keeps both.
	NumberedLines map[int]*Line
}

func NewProgram() *Program {
	return &Program{
		NumberedLines: map[int]*Line{},
	}
}

func (program *Program) AddLine(line *Line) {
	program.Lines = append(program.Lines, line)
	if line.HasNumber {
		program.NumberedLines[line.Number] = line
	}
}

type Line struct {
	Number    int
	HasNumber bool

	Stmt Statement
}

func (line *Line) Walk(visitor Visitor) {
	visitor.Enter(line)
	line.Stmt.Walk(visitor)
	visitor.Exit(line)
}

type Statement interface {
	Node
	isStatement()
}

type statement struct{}

func (statement) isStatement() {}

type PrintStmt struct {
	statement
	Items []ExprListItem
}

func (stmt *PrintStmt) Walk(visitor Visitor) {
	visitor.Enter(stmt)
	for _, item := range stmt.Items {
		item.Walk(visitor)
	}
	visitor.Exit(stmt)
}

// ExprListItem is a PRINT argument: a string literal or an expression.
type ExprListItem interface {
	Node
	isExprListItem()
}

type StringItem struct {
	Text string
}

func (StringItem) isExprListItem() {}

func (item *StringItem) Walk(visitor Visitor) {
	visitor.Enter(item)
	visitor.Exit(item)
}

type IfStmt struct {
	statement
	Left  *Expression
	Op    RelOp
	Right *Expression
	Then  Statement
}

func (stmt *IfStmt) Walk(visitor Visitor) {
	visitor.Enter(stmt)
	stmt.Left.Walk(visitor)
	stmt.Right.Walk(visitor)
	stmt.Then.Walk(visitor)
	visitor.Exit(stmt)
}

type GotoStmt struct {
	statement
	Target *Expression
}

func (stmt *GotoStmt) Walk(visitor Visitor) {
	visitor.Enter(stmt)
	stmt.Target.Walk(visitor)
	visitor.Exit(stmt)
}

type InputStmt struct {
	statement
	Variables []Variable
}

func (stmt *InputStmt) Walk(visitor Visitor) {
	visitor.Enter(stmt)
	visitor.Exit(stmt)
}

type LetStmt struct {
	statement
	Variable Variable
	Value    *Expression
}

func (stmt *LetStmt) Walk(visitor Visitor) {
	visitor.Enter(stmt)
	stmt.Value.Walk(visitor)
	visitor.Exit(stmt)
}

type GosubStmt struct {
	statement
	Target *Expression
}

func (stmt *GosubStmt) Walk(visitor Visitor) {
	visitor.Enter(stmt)
	stmt.Target.Walk(visitor)
	visitor.Exit(stmt)
}

type ReturnStmt struct{ statement }
type ClearStmt struct{ statement }
type ListStmt struct{ statement }
type RunStmt struct{ statement }
type EndStmt struct{ statement }

func (stmt *ReturnStmt) Walk(visitor Visitor) {
	visitor.Enter(stmt)
	visitor.Exit(stmt)
}

func (stmt *ClearStmt) Walk(visitor Visitor) {
	visitor.Enter(stmt)
	visitor.Exit(stmt)
}

func (stmt *ListStmt) Walk(visitor Visitor) {
	visitor.Enter(stmt)
	visitor.Exit(stmt)
}

func (stmt *RunStmt) Walk(visitor Visitor) {
	visitor.Enter(stmt)
	visitor.Exit(stmt)
}

func (stmt *EndStmt) Walk(visitor Visitor) {
	visitor.Enter(stmt)
	visitor.Exit(stmt)
}

type Sign int

const (
	SignNone = Sign(iota)
	SignPositive
	SignNegative
)

func (sign Sign) String() string {
	switch sign {
	case SignPositive:
		return "+"
	case SignNegative:
		return "-"
	}
	return ""
}

// Expression is an optionally signed term followed by signed terms.
type Expression struct {
	Sign  Sign // SignNone when the leading sign is omitted
	First *Term
	Rest  []SignedTerm
}

func (Expression) isExprListItem() {}

func (expr *Expression) Walk(visitor Visitor) {
	visitor.Enter(expr)
	expr.First.Walk(visitor)
	for _, signed := range expr.Rest {
		signed.Term.Walk(visitor)
	}
	visitor.Exit(expr)
}

type SignedTerm struct {
	Sign Sign // SignPositive or SignNegative
	Term *Term
}

type Term struct {
	First Factor
	Rest  []TermElement
}

func (term *Term) Walk(visitor Visitor) {
	visitor.Enter(term)
	term.First.Walk(visitor)
	for _, element := range term.Rest {
		element.Factor.Walk(visitor)
	}
	visitor.Exit(term)
}

type TermOp int

const (
	TermOpTimes = TermOp(iota + 1)
	TermOpDivide
)

func (op TermOp) String() string {
	if op == TermOpDivide {
		return "/"
	}
	return "*"
}

type TermElement struct {
	Op     TermOp
	Factor Factor
}

type Factor interface {
	Node
	isFactor()
}

type VariableFactor struct {
	Variable Variable
}

func (VariableFactor) isFactor() {}

func (factor *VariableFactor) Walk(visitor Visitor) {
	visitor.Enter(factor)
	visitor.Exit(factor)
}

type NumberFactor struct {
	Value int
}

func (NumberFactor) isFactor() {}

func (factor *NumberFactor) Walk(visitor Visitor) {
	visitor.Enter(factor)
	visitor.Exit(factor)
}
