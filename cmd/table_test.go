package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigPathFromArgs(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
	}{
		"default":         {args: []string{"serve"}, want: defaultConfigPath},
		"short before":    {args: []string{"-c", "a.yml", "serve"}, want: "a.yml"},
		"short after":     {args: []string{"worker", "-c", "b.yml"}, want: "b.yml"},
		"long with value": {args: []string{"migrate", "--config=c.yml"}, want: "c.yml"},
		"short equals":    {args: []string{"-c=d.yml", "serve"}, want: "d.yml"},
		"after separator": {args: []string{"serve", "--", "-c", "e.yml"}, want: defaultConfigPath},
		"dangling flag":   {args: []string{"serve", "-c"}, want: defaultConfigPath},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, configPathFromArgs(tc.args))
		})
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"id", "name"}, [][]string{{"1", "Falciparum"}, {"2"}})
	require.Contains(t, out, "Falciparum")
	require.Contains(t, out, "NAME")
	require.Empty(t, renderTable(nil, nil))
}

func TestWriteRows_JSONWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRows(&buf, []string{"id", "name"}, [][]string{{"1", "Vivax"}}))

	var out []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Equal(t, []map[string]string{{"id": "1", "name": "Vivax"}}, out)
}
