package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.trai.ch/probe/internal/core/domain"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	keyword = color.New(color.FgMagenta)
	faint   = color.New(color.Faint)
)

var kindKeywords = map[domain.TypeKind]string{
	domain.KindStruct:    "struct",
	domain.KindClass:     "class",
	domain.KindInterface: "interface",
}

func printTypeEnv(w io.Writer, name domain.ProcName, tenv *domain.TypeEnvironment) {
	_, _ = heading.Fprintf(w, "type environment of %s (%d types)\n", name, tenv.Len())
	for decl := range tenv.Decls() {
		_, _ = keyword.Fprint(w, kindKeywords[decl.Kind])
		_, _ = fmt.Fprintf(w, " %s", decl.Name)
		if len(decl.Supers) > 0 {
			_, _ = fmt.Fprintf(w, " : %s", strings.Join(decl.Supers, ", "))
		}
		_, _ = fmt.Fprintln(w, " {")
		for _, f := range decl.Fields {
			_, _ = fmt.Fprintf(w, "  %s %s\n", f.Name, f.Type)
		}
		for _, m := range decl.Methods {
			_, _ = fmt.Fprintf(w, "  %s()\n", m)
		}
		_, _ = fmt.Fprintln(w, "}")
	}
}

func printCFG(w io.Writer, cfg *domain.ControlFlowGraph) {
	_, _ = heading.Fprintf(w, "%s (%d procedures)\n", cfg.Source.Path(), cfg.Len())
	for body := range cfg.Procedures() {
		printSignature(w, body)
	}
}

func printSignature(w io.Writer, body *domain.ProcedureBody) {
	formals := make([]string, 0, len(body.Formals))
	for _, f := range body.Formals {
		formals = append(formals, f.Name+" "+f.Type)
	}
	ret := body.ReturnType
	if ret == "" {
		ret = "void"
	}
	_, _ = fmt.Fprintf(w, "%s(%s) %s", body.Name, strings.Join(formals, ", "), ret)
	_, _ = faint.Fprintf(w, " [%d nodes]\n", len(body.Nodes))
}

func printBody(w io.Writer, body *domain.ProcedureBody) {
	_, _ = heading.Fprintln(w, body.Name.String())
	printSignature(w, body)
	for _, node := range body.Nodes {
		_, _ = keyword.Fprintf(w, "  #%d %s", node.ID, node.Kind)
		if len(node.Succs) > 0 {
			succs := make([]string, 0, len(node.Succs))
			for _, s := range node.Succs {
				succs = append(succs, fmt.Sprintf("#%d", s))
			}
			_, _ = faint.Fprintf(w, " -> %s", strings.Join(succs, " "))
		}
		_, _ = fmt.Fprintln(w)
		for _, instr := range node.Instrs {
			_, _ = fmt.Fprintf(w, "      %s\n", instr)
		}
	}
}
