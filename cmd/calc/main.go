// Command calc evaluates integer arithmetic expressions, with the grammar
// built from combinators: * and / bind tighter than + and -, parentheses
// group, whitespace is ignored.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/alecthomas/combine"
)

var cli struct {
	AST        bool     `help:"Print the syntax tree instead of evaluating."`
	Expression []string `arg:"" required:"" help:"Expression to evaluate."`
}

// Expr is a node in the parsed expression tree.
type Expr interface {
	Eval() int
}

type Num int

func (n Num) Eval() int { return int(n) }

type BinOp struct {
	Op  rune
	LHS Expr
	RHS Expr
}

func (b *BinOp) Eval() int {
	l, r := b.LHS.Eval(), b.RHS.Eval()
	switch b.Op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	}
	panic("unsupported operator " + string(b.Op))
}

func grammar() combine.Parser[Expr] {
	sc := combine.Space(combine.Whitespace1())
	sym := func(s string) combine.Parser[string] { return combine.Symbol(sc, s) }
	op := func(s string) combine.Parser[func(Expr, Expr) Expr] {
		return combine.Map(sym(s), func(string) func(Expr, Expr) Expr {
			return func(l, r Expr) Expr { return &BinOp{Op: rune(s[0]), LHS: l, RHS: r} }
		})
	}
	integer := combine.Lexeme(sc, combine.Map(
		combine.Some(combine.Satisfy(unicode.IsDigit)),
		func(rs []rune) Expr {
			n, _ := strconv.Atoi(string(rs))
			return Num(n)
		}))
	expr := combine.Fix(func(expr combine.Parser[Expr]) combine.Parser[Expr] {
		factor := combine.Choice(integer, combine.Between(sym("("), sym(")"), expr))
		term := combine.Chain(factor, op("*").Or(op("/")))
		return combine.Chain(term, op("+").Or(op("-")))
	})
	// Leading whitespace, then the expression.
	return combine.Bind(sc, func(combine.Unit) combine.Parser[Expr] { return expr })
}

func main() {
	kctx := kong.Parse(&cli, kong.Description("Evaluate an integer arithmetic expression."))
	tree, err := combine.Run(grammar(), strings.Join(cli.Expression, " "))
	kctx.FatalIfErrorf(err)
	if cli.AST {
		repr.Println(tree)
		return
	}
	fmt.Println(tree.Eval())
}
