package conf

import (
	"path/filepath"
	"strings"

	"github.com/0xalexb/hjarta-conf/config"
	jsonparser "github.com/0xalexb/hjarta-conf/config/parser/json"
	yamlparser "github.com/0xalexb/hjarta-conf/config/parser/yaml"
)

// ParserForFile returns the strict JSON parser for ".json" files and the YAML
// parser for everything else.
//
//nolint:ireturn // the parser depends on the file name
func ParserForFile(path string) config.Parser {
	return ParserForFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParserForFormat returns the parser for a format name ("json", "yaml", "yml").
// Unknown names fall back to YAML, which also reads JSON.
//
//nolint:ireturn // the parser depends on the format name
func ParserForFormat(format string) config.Parser {
	if strings.EqualFold(format, "json") {
		return jsonparser.NewParser()
	}

	return yamlparser.NewParser()
}
