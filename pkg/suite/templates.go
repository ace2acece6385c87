package suite

import "embed"

//go:embed templates/*.py.tpl
var templateFS embed.FS

const (
	// Ext is the extension of every generated file.
	Ext = ".py"

	// ReminderPath does not depend on the domain name.
	ReminderPath = "src/api/router_update_helper" + Ext

	// RouterPath is the central router the operator has to update by hand.
	RouterPath = "src/api/router.py"
)

type Kind string

const (
	KindModel          Kind = "model"
	KindRepository     Kind = "repository"
	KindDTO            Kind = "dto"
	KindUseCases       Kind = "use_cases"
	KindOrmModel       Kind = "orm_model"
	KindSQLRepository  Kind = "sql_repository"
	KindEndpoint       Kind = "endpoint"
	KindRouterReminder Kind = "router_update_helper"
)

// Template pairs a template body with the path it is written to. The path
// is dir + prefix + lower-cased domain name + suffix, except for the
// reminder which has a fixed path.
type Template struct {
	Kind   Kind
	Dir    string
	Prefix string
	Suffix string
	Fixed  string
}

var templates = []Template{
	{Kind: KindModel, Dir: "src/domain/models"},
	{Kind: KindRepository, Dir: "src/domain/repositories", Suffix: "_repository"},
	{Kind: KindDTO, Dir: "src/application/dto", Suffix: "_dto"},
	{Kind: KindUseCases, Dir: "src/application/use_cases", Suffix: "_use_cases"},
	{Kind: KindOrmModel, Dir: "src/infrastructure/orm", Suffix: "_orm_model"},
	{Kind: KindSQLRepository, Dir: "src/infrastructure/repositories", Prefix: "sql_", Suffix: "_repository"},
	{Kind: KindEndpoint, Dir: "src/api/endpoints", Suffix: "_endpoint"},
	{Kind: KindRouterReminder, Fixed: ReminderPath},
}

// Templates returns the templates in generation order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// Path resolves the output path for the lower-cased domain name. The name is
// concatenated as is, never cleaned, so it always stays the file-name stem.
func (t Template) Path(lower string) string {
	if t.Fixed != "" {
		return t.Fixed
	}
	return t.Dir + "/" + t.Prefix + lower + t.Suffix + Ext
}

// Pattern is the path with a {lower} placeholder, used for listings.
func (t Template) Pattern() string {
	return t.Path("{lower}")
}

func (t Template) body() (string, error) {
	b, err := templateFS.ReadFile("templates/" + string(t.Kind) + Ext + ".tpl")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
