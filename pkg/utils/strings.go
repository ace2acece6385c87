package utils

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"
)

// ParseTemplate renders tmplConst with data. Missing keys fail instead of
// printing "<no value>" into generated sources.
func ParseTemplate(tmplName, tmplConst string, data interface{}) (*bytes.Buffer, error) {
	tmp, err := template.New(tmplName).Option("missingkey=error").Parse(tmplConst)
	if err != nil {
		return nil, errors.Wrapf(err, "parse template %s", tmplName)
	}

	buff := new(bytes.Buffer)
	if err := tmp.Execute(buff, data); err != nil {
		return nil, errors.Wrapf(err, "execute template %s", tmplName)
	}

	return buff, nil
}
