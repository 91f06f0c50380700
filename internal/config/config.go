package config

import (
	"gopkg.in/yaml.v3"
	"os"
)


type Colors struct {
	Added    string `yaml:"added,omitempty"`
	Removed  string `yaml:"removed,omitempty"`
	Selected string `yaml:"selected,omitempty"`
}

type Config struct {
	Theme        string `yaml:"theme"`
	Preview      int    `yaml:"preview"`      // report preview length in characters
	WatchMs      int    `yaml:"watchms"`      // file watcher poll interval
	ReportHeight int    `yaml:"reportheight"` // report panel height in rows
	Colors       Colors `yaml:"colors"`
}

var DefaultConfig = Config {
	Theme:        "docdiff",
	Preview:      50,
	WatchMs:      1000,
	ReportHeight: 8,
}

func GetConfig() Config {
	conf := DefaultConfig

	conffilename, exists := os.LookupEnv("DOCDIFF_CONF")
	if !exists { conffilename = "config.yaml" }

	data, err := os.ReadFile(conffilename)
	if err != nil { return conf }

	var yamlConfig Config
	err = yaml.Unmarshal(data, &yamlConfig)
	if err != nil { return conf }

	// read yaml config and override defaults
	if yamlConfig.Theme != "" { conf.Theme = yamlConfig.Theme }
	if yamlConfig.Preview > 0 { conf.Preview = yamlConfig.Preview }
	if yamlConfig.WatchMs > 0 { conf.WatchMs = yamlConfig.WatchMs }
	if yamlConfig.ReportHeight > 0 { conf.ReportHeight = yamlConfig.ReportHeight }
	conf.Colors = yamlConfig.Colors

	return conf
}
