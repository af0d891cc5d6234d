package transform

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/docmap-format/go-docmap/ir"
)

// Expr compiles src into a forward-only transformer. The program runs
// with the node's generic value bound as "value"; its result becomes
// the property value.
func Expr(src string) (Transformer, error) {
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	return Func(func(node *ir.Node) (any, error) {
		return runExpr(prg, node.ToAny())
	}), nil
}

// ReversibleExpr compiles a decode/encode program pair into a
// Reversible transformer. Both programs see their input bound as
// "value"; the encode result is converted back into a document node.
func ReversibleExpr(decodeSrc, encodeSrc string) (Reversible, error) {
	decPrg, err := expr.Compile(decodeSrc)
	if err != nil {
		return nil, err
	}
	encPrg, err := expr.Compile(encodeSrc)
	if err != nil {
		return nil, err
	}
	return ReversibleFunc(
		func(node *ir.Node) (any, error) {
			return runExpr(decPrg, node.ToAny())
		},
		func(v any) (*ir.Node, error) {
			res, err := runExpr(encPrg, v)
			if err != nil {
				return nil, err
			}
			return ir.FromAny(res)
		},
	), nil
}

func runExpr(prg *vm.Program, value any) (any, error) {
	return expr.Run(prg, map[string]any{"value": value})
}
