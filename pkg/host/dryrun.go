package host

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/shrewx/suitex/pkg/suite"
	"gopkg.in/yaml.v3"
)

type Prompter interface {
	PromptForText(ctx context.Context, prompt, placeholder string) (string, error)
}

// DryRun records what a run would write without touching the filesystem.
type DryRun struct {
	Prompter Prompter

	files    []suite.File
	index    map[string]int
	messages []string
}

func NewDryRun(p Prompter) *DryRun {
	return &DryRun{Prompter: p, index: map[string]int{}}
}

func (d *DryRun) PromptForText(ctx context.Context, prompt, placeholder string) (string, error) {
	if d.Prompter == nil {
		return "", nil
	}
	return d.Prompter.PromptForText(ctx, prompt, placeholder)
}

func (d *DryRun) CreateFile(_ context.Context, path string) error {
	if _, ok := d.index[path]; ok {
		d.files[d.index[path]].Content = ""
		return nil
	}
	d.index[path] = len(d.files)
	d.files = append(d.files, suite.File{Path: path})
	return nil
}

func (d *DryRun) WriteFile(_ context.Context, path, text string) error {
	i, ok := d.index[path]
	if !ok {
		return errors.Errorf("write %s before create", path)
	}
	d.files[i].Content = text
	return nil
}

func (d *DryRun) ShowMessage(_ context.Context, text string) {
	d.messages = append(d.messages, text)
}

func (d *DryRun) Files() []suite.File {
	return d.files
}

func (d *DryRun) Messages() []string {
	return d.messages
}

type plannedFile struct {
	Path  string `yaml:"path"`
	Bytes int    `yaml:"bytes"`
}

type plan struct {
	Root     string        `yaml:"root"`
	Files    []plannedFile `yaml:"files"`
	Messages []string      `yaml:"messages,omitempty"`
}

// WriteYAML writes the recorded plan relative to root.
func (d *DryRun) WriteYAML(w io.Writer, root string) error {
	p := plan{Root: root, Messages: d.messages}
	for _, f := range d.files {
		p.Files = append(p.Files, plannedFile{Path: f.Path, Bytes: len(f.Content)})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return errors.Wrap(err, "encode plan")
	}
	return enc.Close()
}
