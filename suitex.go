package suitex

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shrewx/suitex/pkg/logx"
	"github.com/shrewx/suitex/pkg/suite"
	"github.com/sirupsen/logrus"
)

// Prompt shown when Run is called without a domain name.
const (
	DomainPrompt      = "Enter the domain name (e.g., Supplier, Ingredient)"
	DomainPlaceholder = "Domain name"
)

// Result is the naming context and files of a completed run.
type Result struct {
	Naming *suite.NamingContext
	Files  []suite.File
}

// Run generates the domain suite for domainName through h, prompting for the
// name when it is empty. A cancelled or empty prompt returns (nil, nil)
// without touching h again. Files are written in order; the first failing
// write stops the run and already written files are kept.
func Run(ctx context.Context, h Host, domainName string) (*Result, error) {
	if domainName == "" {
		name, err := h.PromptForText(ctx, DomainPrompt, DomainPlaceholder)
		if err != nil {
			return nil, errors.Wrap(err, "prompt for domain name")
		}
		domainName = name
	}

	naming, err := suite.NewNamingContext(domainName)
	if err != nil {
		logx.Debugf("%v, nothing generated", err)
		return nil, nil
	}

	files, err := suite.Render(naming)
	if err != nil {
		return nil, errors.Wrapf(err, "render %s suite", naming.Raw)
	}

	for _, f := range files {
		if err := h.CreateFile(ctx, f.Path); err != nil {
			return nil, errors.Wrapf(err, "create %s", f.Path)
		}
		if err := h.WriteFile(ctx, f.Path, f.Content); err != nil {
			return nil, errors.Wrapf(err, "write %s", f.Path)
		}
		logx.WithFields(logrus.Fields{
			"path":  f.Path,
			"bytes": len(f.Content),
		}).Debug("generated")
	}

	h.ShowMessage(ctx, CompletionMessage(naming))

	return &Result{Naming: naming, Files: files}, nil
}

// CompletionMessage is the notification shown after all files are written.
func CompletionMessage(naming *suite.NamingContext) string {
	return fmt.Sprintf("%s domain suite created successfully! Don't forget to update %s to include your new endpoint.",
		naming.Raw, suite.RouterPath)
}
