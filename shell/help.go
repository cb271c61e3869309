package shell

import (
	"embed"
	"path"
)

//go:embed helptext/*.txt
var helptext embed.FS

func usage(mode string) (*Response, error) {
	return usageTopic("usage-" + mode)
}

func usageTopic(topic string) (*Response, error) {
	dat, err := helptext.ReadFile(path.Join("helptext", path.Base(topic)+".txt"))
	if err != nil {
		return msg("There is no help text for the topic " + topic), nil
	}
	return msg(string(dat)), nil
}
