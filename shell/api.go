package shell

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tilewright/solver/config"
	"github.com/tilewright/solver/lexicon"
	"github.com/tilewright/solver/movegen"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Duration(key string) (time.Duration, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return time.ParseDuration(v[0])
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage("standard")
	}
	return usageTopic(cmd.args[0])
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 2 {
		return nil, errors.New("usage: load grid|lexicon|omit|points <path>")
	}
	path := cmd.args[1]
	switch cmd.args[0] {
	case "grid":
		if err := sc.loadGrid(path); err != nil {
			return nil, err
		}
		return msg(sc.grid.ToDisplayText()), nil
	case "lexicon":
		if err := sc.loadLexicon(path); err != nil {
			return nil, err
		}
	case "omit":
		if sc.index == nil {
			return nil, errNoLexicon
		}
		sc.config.Set(config.ConfigOmit, path)
		if err := sc.loadLexicon(sc.config.GetString(config.ConfigLexicon)); err != nil {
			return nil, err
		}
	case "points":
		if err := sc.loadPoints(path); err != nil {
			return nil, err
		}
		return msg("loaded letter points from " + path), nil
	default:
		return nil, fmt.Errorf("cannot load %q; try grid, lexicon, omit or points", cmd.args[0])
	}
	return msg(fmt.Sprintf("lexicon %s: %d words", sc.index.Name(), sc.index.NumWords())), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	out := sc.grid.ToDisplayText()
	if len(sc.rack) > 0 {
		out += "\nRack: " + sc.rack.String()
	}
	return msg(out), nil
}

func (sc *ShellController) setRackCmd(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need argument for rack")
	}
	if err := sc.setRack(strings.Join(cmd.args, "")); err != nil {
		return nil, err
	}
	return msg("Rack: " + sc.rack.String()), nil
}

func (sc *ShellController) numToShow(cmd *shellcmd) (int, error) {
	if len(cmd.args) > 0 {
		return strconv.Atoi(cmd.args[0])
	}
	return sc.config.GetInt(config.ConfigTop), nil
}

func (sc *ShellController) gen(cmd *shellcmd) (*Response, error) {
	n, err := sc.numToShow(cmd)
	if err != nil {
		return nil, err
	}
	if err := sc.generate(cmd.options); err != nil {
		return nil, err
	}
	return sc.render(sc.results.Top(n), cmd.options)
}

func (sc *ShellController) list(cmd *shellcmd) (*Response, error) {
	if sc.results == nil {
		return nil, errNoResults
	}
	n, err := sc.numToShow(cmd)
	if err != nil {
		return nil, err
	}
	return sc.render(sc.results.Top(n), cmd.options)
}

func (sc *ShellController) best(cmd *shellcmd) (*Response, error) {
	if sc.results == nil {
		return nil, errNoResults
	}
	b, ok := sc.results.Best()
	if !ok {
		return msg("No turns found."), nil
	}
	return msg(fmt.Sprintf("%s (%s) for %d", b.Turn.ShortDescription(),
		b.Turn.Word().Word, b.Score)), nil
}

// settable are the keys `set` may change at run time.
var settable = map[string]func(string) error{
	config.ConfigFirstMove: func(v string) error {
		_, err := movegen.ParseFirstMovePolicy(v)
		return err
	},
	config.ConfigWorkers:    positiveInt,
	config.ConfigTop:        positiveInt,
	config.ConfigBingoBonus: nonNegativeInt,
	config.ConfigBingoTiles: positiveInt,
	config.ConfigFormat: func(v string) error {
		if v != formatText && v != formatYAML {
			return fmt.Errorf("format must be %s or %s", formatText, formatYAML)
		}
		return nil
	},
	config.ConfigLexiconIndex: func(v string) error {
		_, err := lexicon.ParseKind(v)
		return err
	},
}

func settableKeys() []string {
	return slices.Sorted(maps.Keys(settable))
}

func positiveInt(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	if n < 1 {
		return errors.New("value must be at least 1")
	}
	return nil
}

func nonNegativeInt(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	if n < 0 {
		return errors.New("value must not be negative")
	}
	return nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		var sb strings.Builder
		for _, k := range settableKeys() {
			fmt.Fprintf(&sb, "%-16s %v\n", k, sc.config.Get(k))
		}
		return msg(strings.TrimRight(sb.String(), "\n")), nil
	}
	key := cmd.args[0]
	check, ok := settable[key]
	if !ok {
		return nil, fmt.Errorf("%q cannot be set; try one of %s", key,
			strings.Join(settableKeys(), ", "))
	}
	if len(cmd.args) == 1 {
		return msg(fmt.Sprintf("%v", sc.config.Get(key))), nil
	}
	val := cmd.args[1]
	if err := check(val); err != nil {
		return nil, err
	}
	sc.config.Set(key, val)
	return msg("set " + key + " to " + val), nil
}

func (sc *ShellController) info(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Grid: %dx%d, %d tiles\n", sc.grid.Rows(), sc.grid.Cols(), sc.grid.TilesPlayed())
	if sc.index != nil {
		fmt.Fprintf(&sb, "Lexicon: %s, %d words, %T\n", sc.index.Name(), sc.index.NumWords(), sc.index)
	} else {
		sb.WriteString("Lexicon: none\n")
	}
	fmt.Fprintf(&sb, "Rack: %s", sc.rack.String())
	if sc.results != nil {
		fmt.Fprintf(&sb, "\nLast search: %d turns", sc.results.Len())
	}
	return msg(sb.String()), nil
}
