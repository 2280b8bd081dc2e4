package slug_test

import (
	"testing"

	"plasmodocking/pkg/slug"

	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Plasmodium falciparum", want: "plasmodium-falciparum"},
		{in: "Ação Única", want: "acao-unica"},
		{in: "1tv5_a.pdb", want: "1tv5_apdb"},
		{in: "  --Hello   World--  ", want: "hello-world"},
		{in: "alice-3f2c", want: "alice-3f2c"},
		{in: "_edge_", want: "edge"},
		{in: "日本", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, slug.Make(tt.in))
		})
	}
}

func TestMakeOr(t *testing.T) {
	require.Equal(t, "tipo", slug.MakeOr("???", "tipo"))
	require.Equal(t, "vivax", slug.MakeOr("Vivax", "tipo"))
}
