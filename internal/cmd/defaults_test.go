package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaultOpts(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  string
		want []string
	}{
		{
			name: "no env",
			args: []string{"choose", "Q?", "a", "b"},
			want: []string{"choose", "Q?", "a", "b"},
		},
		{
			name: "inserted after subcommand",
			args: []string{"choose", "--wrap=false", "Q?", "a"},
			env:  "--wrap --delimiter ' | '",
			want: []string{"choose", "--wrap", "--delimiter", " | ", "--wrap=false", "Q?", "a"},
		},
		{
			name: "yesno",
			args: []string{"yesno", "Go?"},
			env:  "--alt-screen",
			want: []string{"yesno", "--alt-screen", "Go?"},
		},
		{
			name: "other commands untouched",
			args: []string{"config", "picker.allow_wrap"},
			env:  "--wrap",
			want: []string{"config", "picker.allow_wrap"},
		},
		{
			name: "no args",
			args: nil,
			env:  "--wrap",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := withDefaultOpts(tt.args, tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithDefaultOpts_UnterminatedQuote(t *testing.T) {
	_, err := withDefaultOpts([]string{"choose", "Q?"}, `--delimiter "oops`)
	assert.ErrorContains(t, err, "PICKABOO_DEFAULT_OPTS")
}
