package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // Available options for this command (e.g., "-workers")
	Args    []string // Possible argument values (for non-option arguments)
}

var commandMetadata = map[string]CommandMetadata{
	"gen": {
		Options: []string{"-workers", "-first-move", "-timeout", "-format"},
	},
	"list": {
		Options: []string{"-format"},
	},
	"load": {
		Args: []string{"grid", "lexicon", "omit", "points"},
	},
	"help": {
		Args: []string{"gen", "load", "set"},
	},
	"set": {
		Args: settableKeys(),
	},
}

var commandNames = []string{
	"best", "board", "exit", "gen", "help", "info", "list", "load", "quit",
	"rack", "set", "show",
}

var optionValues = map[string][]string{
	"first-move": {"center", "any"},
	"format":     {formatText, formatYAML},
}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// If we can't parse, fall back to simple space splitting
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		if strings.HasPrefix(lastCompleteField, "-") {
			completions = optionValues[strings.TrimPrefix(lastCompleteField, "-")]
		} else if cmdName == "set" && len(fields) >= 2 && (endsWithSpace || len(fields) > 2) {
			completions = optionValues[fields[1]]
			if completions == nil {
				completions = []string{}
			}
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
