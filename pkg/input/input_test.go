package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTrees(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [][]int
		wantErr string
	}{
		{
			name:  "single line",
			input: "8 3 10 1 6 14 4 7 13\n",
			want:  [][]int{{8, 3, 10, 1, 6, 14, 4, 7, 13}},
		},
		{
			name:  "blank lines and extra spaces skipped",
			input: "\n  1 2\t3 \n\n-4 5\n   \n",
			want:  [][]int{{1, 2, 3}, {-4, 5}},
		},
		{
			name:  "no trailing newline",
			input: "7",
			want:  [][]int{{7}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:    "bad token",
			input:   "1 2\n3 x 4\n",
			wantErr: `line 2: invalid tree value "x"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadTrees(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrBadValue)
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trees.txt")
	require.NoError(t, os.WriteFile(path, []byte("2 1 3\n5 4\n"), 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 1, 3}, {5, 4}}, got)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
