package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug            = "debug"
	ConfigFile             = "config"
	ConfigGrid             = "grid"
	ConfigLexicon          = "lexicon"
	ConfigOmit             = "omit"
	ConfigLexiconIndex     = "lexicon-index"
	ConfigLexiconValidate  = "lexicon-validate"
	ConfigLexiconUppercase = "lexicon-uppercase"
	ConfigLexiconEncoding  = "lexicon-encoding"
	ConfigPoints           = "points"
	ConfigRack             = "rack"
	ConfigFirstMove        = "first-move"
	ConfigWorkers          = "workers"
	ConfigTop              = "top"
	ConfigBingoBonus       = "bingo-bonus"
	ConfigBingoTiles       = "bingo-tiles"
	ConfigFormat           = "format"
)

// EnvPrefix is prepended to every key to form its environment variable,
// with dashes turned into underscores: TILEWRIGHT_LEXICON_INDEX.
const EnvPrefix = "TILEWRIGHT"

// Config holds settings from, in order of precedence, command line
// flags, the environment, a config.yaml file and built-in defaults.
type Config struct {
	*viper.Viper
	args []string
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("solver", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigFile, "", "config file; config.yaml in the working directory is read if present")
	fs.String(ConfigGrid, "", "grid file")
	fs.String(ConfigLexicon, "", "dictionary file, one word per line")
	fs.String(ConfigOmit, "", "file of words to leave out of the dictionary")
	fs.String(ConfigLexiconIndex, "automaton", "dictionary index: automaton, substring or auto")
	fs.Bool(ConfigLexiconValidate, true, "reject dictionary lines that are not alphabetic")
	fs.Bool(ConfigLexiconUppercase, true, "fold dictionary words to upper case")
	fs.String(ConfigLexiconEncoding, "utf8", "dictionary file encoding: utf8 or latin1")
	fs.String(ConfigPoints, "", "letter points file; English values if empty")
	fs.String(ConfigRack, "", "rack to solve for and exit, e.g. CAT*")
	fs.String(ConfigFirstMove, "center", "where an empty grid may be played: center or any")
	fs.Int(ConfigWorkers, 1, "number of search goroutines")
	fs.Int(ConfigTop, 5, "number of turns to show")
	fs.Int(ConfigBingoBonus, 0, "bonus for playing bingo-tiles tiles in one turn")
	fs.Int(ConfigBingoTiles, 7, "tiles a turn must place to earn the bingo bonus")
	fs.String(ConfigFormat, "text", "output format: text or yaml")
	return fs
}

// Load parses args and reads the environment and config file. Arguments
// that are not flags are kept and returned by Args.
func (c *Config) Load(args []string) error {
	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.Viper = viper.New()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix(EnvPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if f := c.GetString(ConfigFile); f != "" {
		c.SetConfigFile(f)
	} else {
		c.SetConfigName("config")
		c.SetConfigType("yaml")
		c.AddConfigPath(".")
	}
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	c.args = fs.Args()
	return nil
}

// Args are the command line arguments left after flags.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings is every setting, fit for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
