package cli

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f outputFormat) String() string {
	return string(f)
}

func (f outputFormat) Type() string {
	return "outputFormat"
}

func (f *outputFormat) Set(val string) error {
	v := outputFormat(strings.ToLower(val))
	switch v {
	case outputText, outputJSON, outputYAML:
		*f = v
		return nil
	default:
		return fmt.Errorf("unknown output format %q. Valid values: %s, %s, %s", val, outputText, outputJSON, outputYAML)
	}
}

// Whether tokens can be written as soon as they're produced,
// or have to be collected first.
func (f outputFormat) streaming() bool {
	return f == outputText
}

func writeToken(w io.Writer, token string, quote bool) error {
	if quote {
		token = fmt.Sprintf("%q", token)
	}
	_, err := fmt.Fprintln(w, token)
	return err
}

func writeTokens(w io.Writer, format outputFormat, tokens []string) error {
	var b []byte
	var err error
	switch format {
	case outputJSON:
		b, err = jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(tokens)
		if err == nil {
			b = append(b, '\n')
		}
	case outputYAML:
		b, err = yaml.Marshal(tokens)
	default:
		return fmt.Errorf("internal error: format %q does not collect tokens", format)
	}
	if err != nil {
		return errors.Wrapf(err, "encoding %d tokens as %s", len(tokens), format)
	}

	_, err = w.Write(b)
	return err
}
