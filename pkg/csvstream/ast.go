package csvstream

import (
	"github.com/shapestone/shape-core/pkg/ast"
)

// ParseToAST tokenizes a complete CSV document and returns it in Shape's
// unified AST representation.
//
// Returns an *ast.ArrayDataNode for the document (array of records), where
// each record is an *ast.ArrayDataNode of fields and each field is an
// *ast.LiteralNode containing a string value.
//
// Example:
//
//	node, err := csvstream.ParseToAST("name,age\nAlice,30")
//	arrayNode := node.(*ast.ArrayDataNode)
//	records := arrayNode.Elements()
func ParseToAST(input string) (ast.SchemaNode, error) {
	return ParseToASTWithOptions(input, DefaultOptions())
}

// ParseToASTWithOptions tokenizes a complete CSV document into Shape's AST
// with custom options.
func ParseToASTWithOptions(input string, opts Options) (ast.SchemaNode, error) {
	rows, err := ParseWithOptions(input, opts)
	if err != nil {
		return nil, err
	}

	records := make([]ast.SchemaNode, 0, len(rows))
	for _, row := range rows {
		fields := make([]ast.SchemaNode, 0, len(row))
		for _, value := range row {
			fields = append(fields, ast.NewLiteralNode(value, ast.ZeroPosition()))
		}
		records = append(records, ast.NewArrayDataNode(fields, ast.ZeroPosition()))
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition()), nil
}
