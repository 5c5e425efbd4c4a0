package ast

// Inspect traverses the tree rooted at n in depth-first, source order,
// calling f for each node.  If f returns true, Inspect visits each of the
// node's children and then calls f(nil), in the manner of go/ast.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *Module:
		for _, item := range n.Items {
			Inspect(item, f)
		}
	case *Def:
		Inspect(n.Name, f)
		for _, p := range n.Params {
			Inspect(p, f)
		}
		if n.Type != nil {
			Inspect(n.Type, f)
		}
		Inspect(n.Expr, f)
	case Param:
		Inspect(n.Pattern, f)
		if n.Type != nil {
			Inspect(n.Type, f)
		}
	case Arg:
		Inspect(n.Term, f)
	case *Paren:
		Inspect(n.Term, f)
	case *Tuple:
		for _, e := range n.Elems {
			Inspect(e, f)
		}
	case *ArrayLiteral:
		for _, e := range n.Elems {
			Inspect(e, f)
		}
	case *Ann:
		Inspect(n.Expr, f)
		Inspect(n.Type, f)
	case *Let:
		Inspect(n.Pattern, f)
		if n.Type != nil {
			Inspect(n.Type, f)
		}
		Inspect(n.Expr, f)
		Inspect(n.Body, f)
	case *If:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		Inspect(n.Else, f)
	case *Arrow:
		Inspect(n.Param, f)
		Inspect(n.Body, f)
	case *FunType:
		for _, p := range n.Params {
			Inspect(p, f)
		}
		Inspect(n.Body, f)
	case *FunLiteral:
		for _, p := range n.Params {
			Inspect(p, f)
		}
		Inspect(n.Body, f)
	case *App:
		Inspect(n.Term, f)
		for _, a := range n.Args {
			Inspect(a, f)
		}
	case *Proj:
		Inspect(n.Term, f)
		for _, id := range n.Fields {
			Inspect(id, f)
		}
	case *Match:
		Inspect(n.Expr, f)
		for _, arm := range n.Arms {
			Inspect(arm, f)
		}
	case MatchArm:
		Inspect(n.Pattern, f)
		Inspect(n.Expr, f)
	case *RecordType:
		for _, field := range n.Fields {
			Inspect(field, f)
		}
	case TypeField:
		Inspect(n.Name, f)
		Inspect(n.Type, f)
	case *RecordLiteral:
		for _, field := range n.Fields {
			Inspect(field, f)
		}
	case ExprField:
		Inspect(n.Name, f)
		Inspect(n.Expr, f)
	case *FormatRecord:
		for _, field := range n.Fields {
			Inspect(field, f)
		}
	case *FormatOverlap:
		for _, field := range n.Fields {
			Inspect(field, f)
		}
	case *FieldFormat:
		Inspect(n.Name, f)
		Inspect(n.Format, f)
		if n.Pred != nil {
			Inspect(n.Pred, f)
		}
	case *FieldComputed:
		Inspect(n.Name, f)
		if n.Type != nil {
			Inspect(n.Type, f)
		}
		Inspect(n.Expr, f)
	case *FormatCond:
		Inspect(n.Name, f)
		Inspect(n.Format, f)
		Inspect(n.Cond, f)
	case *BinaryExpr:
		Inspect(n.LHS, f)
		Inspect(n.Op, f)
		Inspect(n.RHS, f)
	}
	f(nil)
}
