package shell

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/tilewright/solver/config"
	"github.com/tilewright/solver/move"
	"github.com/tilewright/solver/scoreboard"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func turnTableHeader() string {
	return "     Move                Word            Leave    Score\n"
}

func TurnTableRow(idx int, e scoreboard.ScoreEntry) string {
	return fmt.Sprintf("%3d: %-20s%-16s%-9s%d", idx+1,
		e.Turn.ShortDescription(), e.Turn.Word().Word, e.Turn.Leave().String(), e.Score)
}

type placementRecord struct {
	Tile string `yaml:"tile"`
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
}

type turnRecord struct {
	Rank        int               `yaml:"rank"`
	Coords      string            `yaml:"coords"`
	Word        string            `yaml:"word"`
	Tiles       string            `yaml:"tiles"`
	Orientation string            `yaml:"orientation"`
	Leave       string            `yaml:"leave"`
	Score       int               `yaml:"score"`
	Placements  []placementRecord `yaml:"placements"`
}

func toRecords(es []scoreboard.ScoreEntry) []turnRecord {
	return lo.Map(es, func(e scoreboard.ScoreEntry, i int) turnRecord {
		return turnRecord{
			Rank:        i + 1,
			Coords:      e.Turn.BoardCoords(),
			Word:        e.Turn.Word().Word,
			Tiles:       e.Turn.TilesString(),
			Orientation: strings.Trim(e.Turn.Orientation().String(), "()"),
			Leave:       e.Turn.Leave().String(),
			Score:       e.Score,
			Placements: lo.Map(e.Turn.SortedPlacements(), func(p move.Placement, _ int) placementRecord {
				return placementRecord{Tile: p.Tile.String(), Row: p.Pos.Row, Col: p.Pos.Col}
			}),
		}
	})
}

func renderText(es []scoreboard.ScoreEntry) string {
	if len(es) == 0 {
		return "No turns found."
	}
	var sb strings.Builder
	sb.WriteString(turnTableHeader())
	for i, e := range es {
		sb.WriteString(TurnTableRow(i, e))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderYAML(es []scoreboard.ScoreEntry) (string, error) {
	out, err := yaml.Marshal(map[string]any{"turns": toRecords(es)})
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(out), "\n"), nil
}

func (sc *ShellController) render(es []scoreboard.ScoreEntry, options CmdOptions) (*Response, error) {
	format := sc.config.GetString(config.ConfigFormat)
	if f := options.String("format"); f != "" {
		format = f
	}
	switch format {
	case formatText, "":
		return msg(renderText(es)), nil
	case formatYAML:
		out, err := renderYAML(es)
		if err != nil {
			return nil, err
		}
		return msg(out), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
