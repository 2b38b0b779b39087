package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/swiftfw/cli/internal/errors"
)

func TestLinePrompter_Input(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("\nWidgets\n"), &out)
	step := Input("organizationName", "What is your organization name?", "MyOrg")

	v, err := p.Ask(context.Background(), step, "MyOrg")
	require.NoError(t, err)
	assert.Equal(t, "MyOrg", v)

	v, err = p.Ask(context.Background(), step, "MyOrg")
	require.NoError(t, err)
	assert.Equal(t, "Widgets", v)

	assert.Contains(t, out.String(), "What is your organization name? (MyOrg)")
}

func TestLinePrompter_Confirm(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("maybe\nn\n\n"), &out)
	step := Confirm("travis", "Use Travis?", true)

	v, err := p.Ask(context.Background(), step, true)
	require.NoError(t, err)
	assert.Equal(t, false, v)
	assert.Contains(t, out.String(), "Please answer y or n.")
	assert.Contains(t, out.String(), "[Y/n]")

	v, err = p.Ask(context.Background(), step, true)
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestLinePrompter_ClosedInput(t *testing.T) {
	p := NewLinePrompter(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.Ask(context.Background(), Input("a", "A?", ""), "")
	assert.ErrorIs(t, err, oerrors.ErrAborted)
}

func TestLinePrompter_LastLineWithoutNewline(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("Kit"), &bytes.Buffer{})
	v, err := p.Ask(context.Background(), Input("a", "A?", ""), "")
	require.NoError(t, err)
	assert.Equal(t, "Kit", v)
}

func TestScripted_QueueThenDefault(t *testing.T) {
	p := NewScripted(map[string][]any{"a": {"one"}})
	step := Input("a", "", "")

	v, _ := p.Ask(context.Background(), step, "def")
	assert.Equal(t, "one", v)
	v, _ = p.Ask(context.Background(), step, "def")
	assert.Equal(t, "def", v)

	v, _ = p.Ask(context.Background(), Confirm("c", "", false), nil)
	assert.Equal(t, false, v)
}

func TestScripted_RepeatedConfirmDeclines(t *testing.T) {
	p := NewScripted(nil)
	step := Confirm("again", "Again?", true)

	v, _ := p.Ask(context.Background(), step, true)
	assert.Equal(t, true, v)
	v, _ = p.Ask(context.Background(), step, true)
	assert.Equal(t, false, v)
}
