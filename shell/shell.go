package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/tilewright/solver/board"
	"github.com/tilewright/solver/cache"
	"github.com/tilewright/solver/config"
	"github.com/tilewright/solver/lexicon"
	"github.com/tilewright/solver/movegen"
	"github.com/tilewright/solver/rack"
	"github.com/tilewright/solver/scoreboard"
	"github.com/tilewright/solver/tilemapping"
)

// DefaultGridSize is the side of the grid used when no grid file is set.
const DefaultGridSize = 15

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoLexicon         = errors.New("no lexicon is loaded; use `load lexicon <path>`")
	errNoRack            = errors.New("no rack is set; use `rack <tiles>`")
	errNoResults         = errors.New("nothing generated yet; use `gen`")
	errQuit              = errors.New("quit")
)

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	grid   *board.Grid
	index  lexicon.Index
	scores tilemapping.LetterScores
	rack   rack.Rack

	results  *scoreboard.Scoreboard
	lexicons *cache.Cache[lexicon.Index]
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

// extractFields splits a command line into its command, its bare
// arguments and its -key value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := fields[i][1:]
			options[key] = append(options[key], fields[i+1])
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewShellController loads the grid, lexicon, letter points and rack
// named in cfg. Whatever is not configured can be loaded from the shell.
func NewShellController(cfg *config.Config) (*ShellController, error) {
	sc := &ShellController{
		out:    os.Stdout,
		config: cfg,
		grid:   board.NewGrid(DefaultGridSize, DefaultGridSize),
		scores: tilemapping.EnglishScores(),

		lexicons: cache.New[lexicon.Index](),
	}
	if p := cfg.GetString(config.ConfigGrid); p != "" {
		if err := sc.loadGrid(p); err != nil {
			return nil, err
		}
	}
	if p := cfg.GetString(config.ConfigLexicon); p != "" {
		if err := sc.loadLexicon(p); err != nil {
			return nil, err
		}
	}
	if p := cfg.GetString(config.ConfigPoints); p != "" {
		if err := sc.loadPoints(p); err != nil {
			return nil, err
		}
	}
	if r := cfg.GetString(config.ConfigRack); r != "" {
		if err := sc.setRack(r); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func (sc *ShellController) loadGrid(path string) error {
	g, err := board.LoadFile(path)
	if err != nil {
		return err
	}
	sc.grid = g
	sc.results = nil
	return nil
}

func (sc *ShellController) lexiconOptions() (lexicon.LoadOptions, error) {
	kind, err := lexicon.ParseKind(sc.config.GetString(config.ConfigLexiconIndex))
	if err != nil {
		return lexicon.LoadOptions{}, err
	}
	return lexicon.LoadOptions{
		Validate:  sc.config.GetBool(config.ConfigLexiconValidate),
		Uppercase: sc.config.GetBool(config.ConfigLexiconUppercase),
		Encoding:  sc.config.GetString(config.ConfigLexiconEncoding),
		Kind:      kind,
	}, nil
}

func (sc *ShellController) loadLexicon(path string) error {
	opts, err := sc.lexiconOptions()
	if err != nil {
		return err
	}
	omit := sc.config.GetString(config.ConfigOmit)
	key := fmt.Sprintf("%s|%s|%+v", path, omit, opts)
	idx, err := sc.lexicons.Get(key, func(string) (lexicon.Index, error) {
		return lexicon.LoadFiles(path, omit, opts)
	})
	if err != nil {
		return err
	}
	sc.config.Set(config.ConfigLexicon, path)
	sc.index = idx
	sc.results = nil
	return nil
}

func (sc *ShellController) loadPoints(path string) error {
	ls, err := tilemapping.LoadLetterScores(path)
	if err != nil {
		return err
	}
	sc.scores = ls
	sc.results = nil
	return nil
}

func (sc *ShellController) setRack(s string) error {
	r, err := rack.FromString(s)
	if err != nil {
		return err
	}
	if len(r) == 0 {
		return rack.ErrEmptyRack
	}
	sc.rack = r
	sc.results = nil
	return nil
}

func (sc *ShellController) scorer() *scoreboard.Scorer {
	s := scoreboard.NewScorer(sc.scores)
	s.BingoBonus = sc.config.GetInt(config.ConfigBingoBonus)
	s.BingoTiles = sc.config.GetInt(config.ConfigBingoTiles)
	return s
}

func (sc *ShellController) generator(options CmdOptions) (*movegen.Generator, error) {
	if sc.index == nil {
		return nil, errNoLexicon
	}
	policy := sc.config.GetString(config.ConfigFirstMove)
	if p := options.String("first-move"); p != "" {
		policy = p
	}
	fm, err := movegen.ParseFirstMovePolicy(policy)
	if err != nil {
		return nil, err
	}
	workers, err := options.IntDefault("workers", sc.config.GetInt(config.ConfigWorkers))
	if err != nil {
		return nil, err
	}
	return movegen.NewGenerator(sc.grid, sc.index, sc.scorer(),
		movegen.WithFirstMove(fm), movegen.WithWorkers(workers)), nil
}

// generate runs a search for the current rack. A search stopped by a
// timeout keeps the turns found so far.
func (sc *ShellController) generate(options CmdOptions) error {
	if len(sc.rack) == 0 {
		return errNoRack
	}
	gen, err := sc.generator(options)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if options.String("timeout") != "" {
		d, err := options.Duration("timeout")
		if err != nil {
			return err
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	sb, err := gen.Generate(ctx, sc.rack)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if err != nil {
		log.Warn().Int("turns", sb.Len()).Msg("search timed out; showing partial results")
	}
	sc.results = sb
	return nil
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.out, msg)
	io.WriteString(sc.out, "\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) standardModeSwitch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "quit":
		return nil, errQuit
	case "help":
		return sc.help(cmd)
	case "load":
		return sc.load(cmd)
	case "board", "show", "s":
		return sc.show(cmd)
	case "rack":
		return sc.setRackCmd(cmd)
	case "gen":
		return sc.gen(cmd)
	case "list":
		return sc.list(cmd)
	case "best":
		return sc.best(cmd)
	case "set":
		return sc.set(cmd)
	case "info":
		return sc.info(cmd)
	default:
		log.Debug().Msgf("command: %v", cmd.cmd)
		return nil, fmt.Errorf("command %v not found", cmd.cmd)
	}
}

// Execute runs one or more `;`-separated commands without a prompt.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	for _, command := range strings.Split(line, ";") {
		command = strings.TrimSpace(command)
		if command == "" {
			continue
		}
		resp, err := sc.standardModeSwitch(command)
		if errors.Is(err, errQuit) {
			sig <- syscall.SIGINT
			return
		} else if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mtilewright>\033[0m ",
		HistoryFile:     "/tmp/tilewright_readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Error().Err(err).Msg("could not start readline")
		sig <- syscall.SIGINT
		return
	}
	sc.l = l
	sc.out = l.Stdout()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.standardModeSwitch(line)
		if errors.Is(err, errQuit) {
			sig <- syscall.SIGINT
			break
		} else if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup closes the readline instance, if Loop opened one.
func (sc *ShellController) Cleanup() {
	if sc.l != nil {
		sc.l.Close()
	}
}
