package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/pathtidy/pkg/errors"
	"github.com/arthur-debert/pathtidy/pkg/ui/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmAnswers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"plain y", "y\n", false, true},
		{"yes word", "yes\n", false, true},
		{"uppercase", "Y\n", false, true},
		{"plain n", "n\n", true, false},
		{"no word", "NO\n", true, false},
		{"empty picks default false", "\n", false, false},
		{"empty picks default true", "\n", true, true},
		{"surrounding whitespace", "  y  \n", false, true},
		{"answer without trailing newline", "y", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := prompt.New(strings.NewReader(tt.input), &out)

			got, err := p.Confirm("Apply changes?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Apply changes?")
		})
	}
}

func TestConfirmRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("maybe\nwhat\ny\n"), &out)

	got, err := p.Confirm("Remove this entry?", false)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Please answer y or n."))
	assert.Equal(t, 3, strings.Count(out.String(), "Remove this entry?"))
}

func TestConfirmDefaultMarker(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("\n"), &out)
	_, err := p.Confirm("Continue?", true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[Y/n]")
}

func TestConfirmEOFIsError(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader(""), &out)

	_, err := p.Confirm("Apply?", false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrPromptRead))
}
