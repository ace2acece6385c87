package host

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// AskFunc matches survey.AskOne.
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// Terminal prompts on the controlling terminal and writes files under Root.
// Existing files are overwritten.
type Terminal struct {
	Root string
	Out  io.Writer
	Ask  AskFunc
}

func NewTerminal(root string) *Terminal {
	return &Terminal{
		Root: root,
		Out:  color.Output,
		Ask:  survey.AskOne,
	}
}

func (t *Terminal) PromptForText(ctx context.Context, prompt, placeholder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	message := prompt
	if placeholder != "" {
		message += " (" + placeholder + ")"
	}
	input := &survey.Input{Message: message}
	if err := t.Ask(input, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", nil
		}
		return "", err
	}
	return out, nil
}

func (t *Terminal) CreateFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := t.abs(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}
	f, err := os.Create(full)
	if err != nil {
		return errors.WithStack(err)
	}
	return f.Close()
}

func (t *Terminal) WriteFile(ctx context.Context, path, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := t.abs(path)
	if err != nil {
		return err
	}
	return errors.WithStack(os.WriteFile(full, []byte(text), 0644))
}

func (t *Terminal) ShowMessage(_ context.Context, text string) {
	_, _ = color.New(color.FgGreen).Fprintln(t.out(), text)
}

// abs resolves path under Root and refuses paths that escape it.
func (t *Terminal) abs(path string) (string, error) {
	full := filepath.Join(t.Root, filepath.FromSlash(path))
	rel, err := filepath.Rel(filepath.Clean(t.Root), full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("%s resolves outside %s", path, t.Root)
	}
	return full, nil
}

func (t *Terminal) out() io.Writer {
	if t.Out == nil {
		return os.Stdout
	}
	return t.Out
}
