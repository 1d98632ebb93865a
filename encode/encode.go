package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yiroth/libvariant/format"
	"github.com/yiroth/libvariant/variant"

	"github.com/goccy/go-yaml"
)

// Encode writes doc as a list of containers in the selected format.
func Encode(doc []variant.Container, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if doc == nil {
		doc = []variant.Container{}
	}
	var (
		d   []byte
		err error
	)
	switch es.format {
	case format.JSONFormat:
		if es.wire {
			d, err = json.Marshal(doc)
		} else {
			d, err = json.MarshalIndent(doc, "", "  ")
		}
		if err == nil {
			d = append(d, '\n')
		}
	default:
		d, err = yaml.MarshalWithOptions(doc, yaml.Indent(2), yaml.Flow(es.wire))
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", es.format, err)
	}
	_, err = w.Write(d)
	return err
}

// EncodeValue writes a single variant.
func EncodeValue(v variant.Variant, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	var (
		d   []byte
		err error
	)
	switch es.format {
	case format.JSONFormat:
		d, err = json.Marshal(v)
		if err == nil {
			d = append(d, '\n')
		}
	default:
		d, err = yaml.MarshalWithOptions(v, yaml.Flow(es.wire))
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", es.format, err)
	}
	_, err = w.Write(d)
	return err
}
