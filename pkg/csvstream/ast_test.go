package csvstream

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToAST(t *testing.T) {
	node, err := ParseToAST("name,age\nAlice,30")
	require.NoError(t, err)

	file, ok := node.(*ast.ArrayDataNode)
	require.True(t, ok, "document node should be *ast.ArrayDataNode")
	require.Len(t, file.Elements(), 2)

	header, ok := file.Elements()[0].(*ast.ArrayDataNode)
	require.True(t, ok, "record node should be *ast.ArrayDataNode")
	require.Len(t, header.Elements(), 2)

	field, ok := header.Elements()[0].(*ast.LiteralNode)
	require.True(t, ok, "field node should be *ast.LiteralNode")
	assert.Equal(t, "name", field.Value())

	row, ok := file.Elements()[1].(*ast.ArrayDataNode)
	require.True(t, ok)
	age, ok := row.Elements()[1].(*ast.LiteralNode)
	require.True(t, ok)
	assert.Equal(t, "30", age.Value())
}

func TestParseToASTWithOptions_InvalidOptions(t *testing.T) {
	_, err := ParseToASTWithOptions("a", Options{Comma: 0, Quote: '"'})
	require.Error(t, err)
	var optErr *OptionsError
	assert.ErrorAs(t, err, &optErr)
}
