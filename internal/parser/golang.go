package parser

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"regexp"
	"strings"
)

var (
	goStructRe    = regexp.MustCompile(`^type\s+(\w+)\s+struct\b`)
	goInterfaceRe = regexp.MustCompile(`^type\s+(\w+)\s+interface\b`)
	goFuncRe      = regexp.MustCompile(`^func\s+(\(.*?\)\s*)?(\w+)\s*\((.*?)\)`)
	goLoopRe      = regexp.MustCompile(`^for\s+(.+)\s*\{`)
)

// goRecognizer parses Go source with the real grammar and falls back to the
// rule table when the file does not parse.
type goRecognizer struct {
	fallback *ruleRecognizer
}

func newGoRecognizer() *goRecognizer {
	return &goRecognizer{fallback: newGoRuleRecognizer()}
}

func (g *goRecognizer) Name() string { return "go" }

func (g *goRecognizer) CanHandle(ext string) bool { return ext == ".go" }

func (g *goRecognizer) Scan(content string, lines []string) []*Element {
	fset := token.NewFileSet()
	file, err := goparser.ParseFile(fset, "", content, 0)
	if err != nil {
		return g.fallback.Scan(content, lines)
	}

	src := func(from, to token.Pos) string {
		lo := fset.Position(from).Offset
		hi := fset.Position(to).Offset
		if lo < 0 || hi > len(content) || lo > hi {
			return ""
		}
		return content[lo:hi]
	}
	span := func(node ast.Node) (int, int) {
		return fset.Position(node.Pos()).Line - 1, fset.Position(node.End()).Line - 1
	}

	var elements []*Element

	ast.Inspect(file, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.TypeSpec:
			start, end := span(n)
			switch n.Type.(type) {
			case *ast.StructType:
				elements = append(elements, NewElement(KindClass, "struct "+n.Name.Name, start, end, lines))
			case *ast.InterfaceType:
				elements = append(elements, NewElement(KindClass, "interface "+n.Name.Name, start, end, lines))
			}

		case *ast.FuncDecl:
			start, end := span(n)
			receiver := ""
			if n.Recv != nil {
				receiver = src(n.Recv.Opening, n.Recv.Closing+1) + " "
			}
			kind := KindFunction
			if strings.HasPrefix(n.Name.Name, "Test") {
				kind = KindTest
			}
			label := fmt.Sprintf("%s %s%s(%s)%s",
				kind, receiver, n.Name.Name,
				renderParams(n.Type.Params), renderResult(n.Type.Results))
			elements = append(elements, NewElement(kind, label, start, end, lines))

		case *ast.ForStmt, *ast.RangeStmt:
			start, end := span(node)
			if end-start+1 > 5 && start < len(lines) {
				head := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(lines[start]), "{"))
				elements = append(elements, NewElement(KindLoop, "loop "+head, start, end, lines))
			}
		}
		return true
	})

	return elements
}

// renderParams renders a parameter list as names joined ", ", with simple
// identifier types shown as "name: T". Unnamed parameters keep the bare type
// when it is a simple identifier and are omitted otherwise.
func renderParams(params *ast.FieldList) string {
	if params == nil {
		return ""
	}
	var parts []string
	for _, field := range params.List {
		typeName := ""
		if ident, ok := field.Type.(*ast.Ident); ok {
			typeName = ident.Name
		}
		if len(field.Names) == 0 {
			if typeName != "" {
				parts = append(parts, typeName)
			}
			continue
		}
		for _, name := range field.Names {
			if typeName != "" {
				parts = append(parts, name.Name+": "+typeName)
			} else {
				parts = append(parts, name.Name)
			}
		}
	}
	return strings.Join(parts, ", ")
}

// renderResult renders a single simple identifier result as " -> T".
// Multiple results and composite types are omitted.
func renderResult(results *ast.FieldList) string {
	if results == nil || len(results.List) != 1 {
		return ""
	}
	if ident, ok := results.List[0].Type.(*ast.Ident); ok {
		return " -> " + ident.Name
	}
	return ""
}

// newGoRuleRecognizer is the regex path used when go/parser rejects a file,
// typically a snippet or a file mid-edit.
func newGoRuleRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "go",
		exts: []string{".go"},
		rules: []rule{
			{
				re: goStructRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, "struct "+m[1], i, end, lines)
				},
			},
			{
				re: goInterfaceRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, "interface "+m[1], i, end, lines)
				},
			},
			{
				re: goFuncRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					receiver := strings.TrimSpace(m[1])
					if receiver != "" {
						receiver += " "
					}
					kind := KindFunction
					if strings.HasPrefix(m[2], "Test") {
						kind = KindTest
					}
					label := fmt.Sprintf("%s %s%s(%s)", kind, receiver, m[2], m[3])
					return NewElement(kind, label, i, end, lines)
				},
			},
			loopRule(goLoopRe, endOfBraceBlock, func(m []string) string {
				return "loop for " + m[1]
			}),
		},
	}
}
