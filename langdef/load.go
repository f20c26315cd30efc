package langdef

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/signadot/sexpr/syntax"
)

type loadOpts struct {
	format  *Format
	patches [][]byte
}

type LoadOption func(*loadOpts)

// WithFormat overrides the format implied by a file name.
func WithFormat(f Format) LoadOption {
	return func(o *loadOpts) { o.format = &f }
}

// WithPatch applies a JSON patch, given as JSON or YAML, to the
// description.  Patches apply in order.
func WithPatch(patch []byte) LoadOption {
	return func(o *loadOpts) { o.patches = append(o.patches, patch) }
}

// Load reads a description from path.
func Load(path string, opts ...LoadOption) (*Description, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lOpts := &loadOpts{}
	for _, o := range opts {
		o(lOpts)
	}
	f := FormatOf(path)
	if lOpts.format != nil {
		f = *lOpts.format
	}
	desc, err := Decode(d, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

// LoadWithPatchFile reads the description at path, or uses Lisp when path
// is empty, and applies the JSON patch in patchFile when it is not empty.
func LoadWithPatchFile(path, patchFile string) (*Description, error) {
	var patch []byte
	if patchFile != "" {
		d, err := os.ReadFile(patchFile)
		if err != nil {
			return nil, fmt.Errorf("could not read patch: %w", err)
		}
		patch = d
	}
	if path == "" {
		desc := Lisp()
		if patch == nil {
			return desc, nil
		}
		return desc.Patch(patch)
	}
	var opts []LoadOption
	if patch != nil {
		opts = append(opts, WithPatch(patch))
	}
	return Load(path, opts...)
}

// LoadGraph reads a description from path and builds its grammar.
func LoadGraph(path string, opts ...LoadOption) (*syntax.Graph, error) {
	desc, err := Load(path, opts...)
	if err != nil {
		return nil, err
	}
	g, err := desc.Graph()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Decode parses a description in format f and applies any patches.
func Decode(d []byte, f Format, opts ...LoadOption) (*Description, error) {
	lOpts := &loadOpts{}
	for _, o := range opts {
		o(lOpts)
	}
	desc := &Description{}
	var err error
	switch f {
	case YAMLFormat:
		err = yaml.Unmarshal(d, desc)
	case JSONFormat:
		err = json.Unmarshal(d, desc)
	case TOMLFormat:
		err = toml.Unmarshal(d, desc)
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDescription, err)
	}
	for i, p := range lOpts.patches {
		desc, err = desc.Patch(p)
		if err != nil {
			return nil, fmt.Errorf("patch %d: %w", i, err)
		}
	}
	return desc, nil
}

// Patch returns a copy of desc with the JSON patch applied.
func (desc *Description) Patch(patch []byte) (*Description, error) {
	patch = bytes.TrimSpace(patch)
	if len(patch) > 0 && patch[0] != '[' {
		j, err := yaml.YAMLToJSON(patch)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadDescription, err)
		}
		patch = j
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDescription, err)
	}
	doc, err := json.Marshal(desc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDescription, err)
	}
	res := &Description{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDescription, err)
	}
	return res, nil
}

// Marshal encodes desc in format f.
func (desc *Description) Marshal(f Format) ([]byte, error) {
	switch f {
	case YAMLFormat:
		return yaml.Marshal(desc)
	case JSONFormat:
		return json.MarshalIndent(desc, "", "  ")
	case TOMLFormat:
		buf := bytes.NewBuffer(nil)
		if err := toml.NewEncoder(buf).Encode(desc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}
