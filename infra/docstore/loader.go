// Package docstore reads the flat-file schedule documents and writes the
// generated feed. Input reads degrade to empty documents on any failure so
// a missing or corrupt file never aborts a build.
package docstore

import (
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hallboard/schoolfeed/infra/logger"
)

// LoadDocument parses the JSON document at path into T. Any read or parse
// failure yields the zero value of T.
func LoadDocument[T any](path string, log logger.Logger) T {
	var doc T
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		log.Debugf("document %s unavailable, using empty: %v", path, err)
		return doc
	}
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		log.Debugf("document %s malformed, using empty: %v", path, err)
		var zero T
		return zero
	}
	return doc
}

// LoadTree parses the JSON document at path as a generic tree, for the
// date-keyed overrides document. Returns nil on any failure.
func LoadTree(path string, log logger.Logger) map[string]any {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		log.Debugf("document %s unavailable, using empty: %v", path, err)
		return nil
	}
	return k.Raw()
}
