package suite

import (
	"github.com/pkg/errors"
	"github.com/shrewx/suitex/pkg/utils"
)

// File is one generated source. Path is slash separated and relative to the
// project root.
type File struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
}

// Generate renders every template for domainName. An empty name yields no
// files. The result only depends on domainName.
func Generate(domainName string) ([]File, error) {
	naming, err := NewNamingContext(domainName)
	if errors.Is(err, ErrNoDomainName) {
		return nil, nil
	}
	return Render(naming)
}

// Render instantiates every template for naming, in table order.
func Render(naming *NamingContext) ([]File, error) {
	files := make([]File, 0, len(templates))
	for _, t := range templates {
		body, err := t.body()
		if err != nil {
			return nil, errors.Wrapf(err, "load %s template", t.Kind)
		}
		p := t.Path(naming.Lower)
		buff, err := utils.ParseTemplate(p, body, naming)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: p, Content: buff.String()})
	}
	return files, nil
}
