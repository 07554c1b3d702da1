package analyzer

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	analyzerName = "exitcalls"
	analyzerDoc  = "reports panic and process-terminating log/os calls outside func main of package main"
)

// Analyzer checks that errors are returned instead of terminating the process.
var Analyzer = &analysis.Analyzer{
	Name:     analyzerName,
	Doc:      analyzerDoc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// terminating lists, per import path, the functions that end the process.
var terminating = map[string]map[string]bool{
	"log": {
		"Fatal":   true,
		"Fatalf":  true,
		"Fatalln": true,
		"Panic":   true,
		"Panicf":  true,
		"Panicln": true,
	},
	"os": {
		"Exit": true,
	},
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.CallExpr)(nil),
	}

	// Preorder visits a FuncDecl before the calls in its body, so the
	// enclosing function is known when a call is checked.
	var allowed *ast.FuncDecl
	insp.Preorder(nodeFilter, func(node ast.Node) {
		switch n := node.(type) {
		case *ast.FuncDecl:
			allowed = nil
			if pass.Pkg.Name() == "main" && n.Recv == nil && n.Name.Name == "main" {
				allowed = n
			}
		case *ast.CallExpr:
			checkCall(pass, n, allowed != nil && n.Pos() >= allowed.Pos() && n.End() <= allowed.End())
		}
	})

	return nil, nil
}

func checkCall(pass *analysis.Pass, call *ast.CallExpr, inMain bool) {
	switch fn := call.Fun.(type) {
	case *ast.Ident:
		if b, ok := pass.TypesInfo.Uses[fn].(*types.Builtin); ok && b.Name() == "panic" {
			pass.Reportf(call.Pos(), "panic is forbidden")
		}
	case *ast.SelectorExpr:
		if inMain {
			return
		}

		ident, ok := fn.X.(*ast.Ident)
		if !ok {
			return
		}

		pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
		if !ok {
			return
		}

		pkgPath := pkgName.Imported().Path()
		if terminating[pkgPath][fn.Sel.Name] {
			pass.Reportf(call.Pos(), "%s.%s is forbidden outside main function", pkgPath, fn.Sel.Name)
		}
	}
}
