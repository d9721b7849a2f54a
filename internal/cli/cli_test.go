package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	t      *testing.T
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	return &fixture{
		t:      t,
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
	}
}

func (f *fixture) run(args ...string) error {
	s := streams{Out: f.out, ErrOut: f.errOut}
	cmd := newRootCmd(s)
	cmd.SetArgs(args)
	return execute(cmd, s)
}

func (f *fixture) assertOut(expected string) {
	assert.Equal(f.t, expected, f.out.String())
}

func TestDemo(t *testing.T) {
	f := newFixture(t)
	err := f.run("demo")
	require.NoError(t, err)
	f.assertOut("Hello\nworld\nfrom\nrust!\n")
	assert.Equal(t, "", f.errOut.String())
}

func TestNoSubcommandRunsDemo(t *testing.T) {
	f := newFixture(t)
	err := f.run()
	require.NoError(t, err)
	f.assertOut("Hello\nworld\nfrom\nrust!\n")
	assert.Equal(t, "", f.errOut.String())
}

func TestNoSubcommandDebug(t *testing.T) {
	f := newFixture(t)
	err := f.run("-d")
	require.NoError(t, err)
	f.assertOut("Hello\nworld\nfrom\nrust!\n")
	assert.Contains(t, f.errOut.String(), "demo: splitting")
}

func TestUnknownSubcommandFails(t *testing.T) {
	f := newFixture(t)
	err := f.run("bogus")
	require.Error(t, err)
	f.assertOut("")
	assert.Contains(t, f.errOut.String(), "ERROR: ")
}

func TestDemoRejectsArgs(t *testing.T) {
	f := newFixture(t)
	err := f.run("demo", "extra")
	require.Error(t, err)
	f.assertOut("")
}

func TestDemoDebug(t *testing.T) {
	f := newFixture(t)
	err := f.run("--debug", "demo")
	require.NoError(t, err)
	f.assertOut("Hello\nworld\nfrom\nrust!\n")
	assert.Contains(t, f.errOut.String(), `demo: splitting "Hello,_,world,_,from,_,rust!,_," on ",_,"`)
}

func TestSubcommandsRegistered(t *testing.T) {
	cmd := Cmd()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"demo", "split", "version"})
}
