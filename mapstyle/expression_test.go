package mapstyle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpressionJSON(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want string
	}{
		{
			name: "get",
			expr: Get("name"),
			want: `["get","name"]`,
		},
		{
			name: "case with fallback",
			expr: Case("#000", Branch{When: Eq(Get("kind"), "a"), Then: "#aaa"}),
			want: `["case",["==",["get","kind"],"a"],"#aaa","#000"]`,
		},
		{
			name: "case without branches",
			expr: Case("#000"),
			want: `["case","#000"]`,
		},
		{
			name: "interpolate",
			expr: Interpolate(Linear(), Zoom(), Stop{Input: 4, Output: 10}, Stop{Input: 14, Output: 16}),
			want: `["interpolate",["linear"],["zoom"],4,10,14,16]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.expr)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestExpressionOperator(t *testing.T) {
	assert.Equal(t, "case", Case(nil).Operator())
	assert.Equal(t, "zoom", Zoom().Operator())
	assert.Equal(t, "", Expression{}.Operator())
	assert.Equal(t, "", Expression{1}.Operator())
}

func TestMatchTablesOrder(t *testing.T) {
	expr := matchCase(DefaultConfig().Section(Landuse), LanduseMatches)

	// operator + 5 condition/output pairs + fallback
	require.Len(t, expr, 12)
	for i, m := range LanduseMatches {
		cond := expr[1+2*i].(Expression)
		assert.Equal(t, Eq(Get(m.Property), m.Value), cond)
	}
	assert.Equal(t, "#f5f5f5", expr[len(expr)-1])
}
