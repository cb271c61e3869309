package shell

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"

	"github.com/tilewright/solver/config"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"gen -workers 4",
			&shellcmd{"gen", nil, CmdOptions{"workers": {"4"}}},
			nil},
		{"gen 10",
			&shellcmd{"gen", []string{"10"}, CmdOptions{}},
			nil},
		{"load grid '/path/with space/g.txt' -format yaml ",
			&shellcmd{"load",
				[]string{"grid", "/path/with space/g.txt"},
				CmdOptions{"format": {"yaml"}}},
			nil,
		},
		{"gen 10 -workers",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func newTestController(t *testing.T, extra ...string) (*ShellController, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	grid := writeFile(t, dir, "grid.txt", "- - -\n- C -\n- - -\n")
	lex := writeFile(t, dir, "tiny.txt", "cat\nat\nca\n")
	cfg := &config.Config{}
	args := append([]string{"--grid", grid, "--lexicon", lex, "--rack", "at"}, extra...)
	if err := cfg.Load(args); err != nil {
		t.Fatal(err)
	}
	sc, err := NewShellController(cfg)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	sc.out = buf
	return sc, buf
}

func TestGenText(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)

	resp, err := sc.standardModeSwitch("gen 2")
	is.NoErr(err)
	lines := strings.Split(resp.message, "\n")
	is.Equal(len(lines), 3) // header and two turns
	is.True(strings.HasPrefix(lines[1], "  1: C2 AT"))
	is.True(strings.HasPrefix(lines[2], "  2: 3B AT"))

	resp, err = sc.standardModeSwitch("best")
	is.NoErr(err)
	is.Equal(resp.message, "C2 AT (AT) for 2")

	resp, err = sc.standardModeSwitch("list")
	is.NoErr(err)
	is.Equal(len(strings.Split(resp.message, "\n")), 5)
}

func TestGenYAML(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t, "--format", "yaml")
	resp, err := sc.standardModeSwitch("gen 1 -workers 2")
	is.NoErr(err)

	var out struct {
		Turns []turnRecord `yaml:"turns"`
	}
	is.NoErr(yaml.Unmarshal([]byte(resp.message), &out))
	is.Equal(len(out.Turns), 1)
	is.Equal(out.Turns[0].Coords, "C2")
	is.Equal(out.Turns[0].Word, "AT")
	is.Equal(out.Turns[0].Orientation, "vertical")
	is.Equal(out.Turns[0].Score, 2)
	is.Equal(out.Turns[0].Placements, []placementRecord{
		{Tile: "A", Row: 1, Col: 2},
		{Tile: "T", Row: 2, Col: 2},
	})
}

func TestCommandsBeforeSetup(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load(nil))
	sc, err := NewShellController(cfg)
	is.NoErr(err)

	_, err = sc.standardModeSwitch("best")
	is.True(errors.Is(err, errNoResults))
	_, err = sc.standardModeSwitch("gen")
	is.True(errors.Is(err, errNoRack))
	_, err = sc.standardModeSwitch("rack QI")
	is.NoErr(err)
	_, err = sc.standardModeSwitch("gen")
	is.True(errors.Is(err, errNoLexicon))
	_, err = sc.standardModeSwitch("frobnicate")
	is.True(err != nil)
}

func TestSet(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	resp, err := sc.standardModeSwitch("set top 1")
	is.NoErr(err)
	is.Equal(resp.message, "set top to 1")
	resp, err = sc.standardModeSwitch("gen")
	is.NoErr(err)
	is.Equal(len(strings.Split(resp.message, "\n")), 2)

	_, err = sc.standardModeSwitch("set top 0")
	is.True(err != nil)
	_, err = sc.standardModeSwitch("set first-move corner")
	is.True(err != nil)
	_, err = sc.standardModeSwitch("set grid /etc/passwd")
	is.True(err != nil)
}

func TestExecute(t *testing.T) {
	is := is.New(t)
	sc, buf := newTestController(t)
	sig := make(chan os.Signal, 1)
	sc.Execute(sig, "rack TA; best; gen 1; exit; board")
	out := buf.String()
	is.True(strings.Contains(out, "Rack: TA"))
	is.True(strings.Contains(out, "Error: "+errNoResults.Error()))
	is.True(strings.Contains(out, "C2 AT"))
	is.Equal(strings.Count(out, "Rack: TA"), 1) // board never shown
	is.Equal(<-sig, os.Signal(syscall.SIGINT))
}

func TestHelp(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	resp, err := sc.standardModeSwitch("help")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "gen [n]"))
	resp, err = sc.standardModeSwitch("help gen")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "-timeout"))
	resp, err = sc.standardModeSwitch("help nothing")
	is.NoErr(err)
	is.Equal(resp.message, "There is no help text for the topic nothing")
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	c := NewShellCompleter(&ShellController{})
	complete := func(s string) []string {
		m, _ := c.Do([]rune(s), len(s))
		var out []string
		for _, r := range m {
			out = append(out, string(r))
		}
		return out
	}
	is.Equal(complete("ge"), []string{"n"})
	is.Equal(complete("load "), []string{"grid", "lexicon", "omit", "points"})
	is.Equal(complete("gen -first-move "), []string{"center", "any"})
	is.Equal(complete("set format y"), []string{"aml"})
}

func TestLoadCommands(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	dir := t.TempDir()
	lex := sc.config.GetString(config.ConfigLexicon)

	resp, err := sc.standardModeSwitch("load lexicon " + lex)
	is.NoErr(err)
	is.Equal(resp.message, "lexicon tiny: 3 words")
	is.Equal(sc.lexicons.Len(), 1) // loaded once, at startup

	points := writeFile(t, dir, "points.txt", "A 3\nT 4\nC 1\n")
	_, err = sc.standardModeSwitch("load points " + points)
	is.NoErr(err)
	resp, err = sc.standardModeSwitch("gen 1")
	is.NoErr(err)
	is.True(strings.HasSuffix(resp.message, "7"))

	// Without CA nothing can be played next to the C.
	omit := writeFile(t, dir, "omit.txt", "CA\n")
	resp, err = sc.standardModeSwitch("load omit " + omit)
	is.NoErr(err)
	is.Equal(resp.message, "lexicon tiny: 2 words")
	is.Equal(sc.lexicons.Len(), 2)

	resp, err = sc.standardModeSwitch("gen")
	is.NoErr(err)
	is.Equal(resp.message, "No turns found.")

	grid := writeFile(t, dir, "g.txt", "C - -\n- - -\n- - -\n")
	resp, err = sc.standardModeSwitch("load grid " + grid)
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "C"))
	_, err = sc.standardModeSwitch("best")
	is.True(errors.Is(err, errNoResults))

	_, err = sc.standardModeSwitch("load tiles foo")
	is.True(err != nil)
}
