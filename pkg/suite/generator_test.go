package suite

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNamingContext(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		pascal string
		lower  string
	}{
		{name: "pascal input", raw: "Supplier", pascal: "Supplier", lower: "supplier"},
		{name: "lowercase input keeps lowercase type", raw: "ingredient", pascal: "ingredient", lower: "ingredient"},
		{name: "multi word", raw: "PurchaseOrder", pascal: "PurchaseOrder", lower: "purchaseorder"},
		{name: "upper input", raw: "SUPPLIER", pascal: "SUPPLIER", lower: "supplier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewNamingContext(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, n.Raw)
			assert.Equal(t, tt.pascal, n.Pascal)
			assert.Equal(t, tt.lower, n.Lower)
		})
	}

	_, err := NewNamingContext("")
	assert.True(t, errors.Is(err, ErrNoDomainName))
}

func TestGenerate_Empty(t *testing.T) {
	files, err := Generate("")
	assert.NoError(t, err)
	assert.Len(t, files, 0)
}

func TestGenerate_Paths(t *testing.T) {
	files, err := Generate("Supplier")
	require.NoError(t, err)
	require.Len(t, files, 8)

	expect := []string{
		"src/domain/models/supplier.py",
		"src/domain/repositories/supplier_repository.py",
		"src/application/dto/supplier_dto.py",
		"src/application/use_cases/supplier_use_cases.py",
		"src/infrastructure/orm/supplier_orm_model.py",
		"src/infrastructure/repositories/sql_supplier_repository.py",
		"src/api/endpoints/supplier_endpoint.py",
		ReminderPath,
	}
	for i, f := range files {
		assert.Equal(t, expect[i], f.Path)
		assert.NotEmpty(t, f.Content, f.Path)
	}
}

func TestGenerate_PathStem(t *testing.T) {
	for _, name := range []string{"Supplier", "ingredient", "Role"} {
		files, err := Generate(name)
		require.NoError(t, err)
		require.Len(t, files, 8)

		l := lower(name)
		for _, f := range files[:7] {
			base := f.Path[strings.LastIndex(f.Path, "/")+1:]
			assert.Equal(t, 1, strings.Count(base, l), f.Path)
		}
		assert.Equal(t, ReminderPath, files[7].Path)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	first, err := Generate("Supplier")
	require.NoError(t, err)
	second, err := Generate("Supplier")
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Generate() not deterministic (-first +second):\n%s", diff)
	}
}

func TestGenerate_Identifiers(t *testing.T) {
	files, err := Generate("Supplier")
	require.NoError(t, err)
	byKind := filesByKind(files)

	model := byKind[KindModel]
	assert.Contains(t, model, "class SupplierBase(BaseModel):")
	assert.Contains(t, model, "class Supplier(SupplierBase):")

	assert.Contains(t, byKind[KindRepository], "class SupplierRepository(ABC):")
	assert.Contains(t, byKind[KindRepository], "from domain.models.supplier import Supplier\n")
	assert.Contains(t, byKind[KindDTO], "class SupplierCreateDTO(SupplierBase):")
	assert.Contains(t, byKind[KindDTO], "class SupplierUpdateDTO(SupplierBase):")
	assert.Contains(t, byKind[KindUseCases], "class SupplierUseCases:")
	assert.Contains(t, byKind[KindUseCases], `raise ValueError(f"Supplier with id {id} not found")`)
	assert.Contains(t, byKind[KindOrmModel], `__tablename__ = "suppliers"`)
	assert.Contains(t, byKind[KindSQLRepository], "class SQLSupplierRepository(SupplierRepository):")

	endpoint := byKind[KindEndpoint]
	assert.Contains(t, endpoint, `@router.get("/{supplier_id}", response_model=Supplier)`)
	assert.Contains(t, endpoint, `detail=f"Supplier with ID {supplier_id} not found"`)
	assert.Contains(t, endpoint, "async def get_all_suppliers(")

	reminder := byKind[KindRouterReminder]
	assert.Contains(t, reminder, `prefix="/suppliers", tags=["suppliers"]`)
	assert.Contains(t, reminder, "from api.endpoints import supplier_endpoint")
	assert.NotContains(t, reminder, "Supplier")

	for kind, content := range byKind {
		assert.NotContains(t, content, "{{", kind)
		assert.NotContains(t, content, "<no value>", kind)
	}
}

func TestGenerate_LowercaseInput(t *testing.T) {
	files, err := Generate("ingredient")
	require.NoError(t, err)
	byKind := filesByKind(files)

	assert.Contains(t, byKind[KindModel], "class ingredientBase(BaseModel):")
	assert.Contains(t, byKind[KindModel], "class ingredient(ingredientBase):")
	assert.Contains(t, byKind[KindRepository], "class ingredientRepository(ABC):")
	assert.NotContains(t, byKind[KindModel], "Ingredient")
}

func TestGenerate_SQLRepositoryConversions(t *testing.T) {
	for _, name := range []string{"Supplier", "ingredient"} {
		files, err := Generate(name)
		require.NoError(t, err)
		methods := pythonMethods(filesByKind(files)[KindSQLRepository])

		orm := name + "OrmModel.from_domain("
		assert.Equal(t, 1, strings.Count(methods["add"], orm), name)
		assert.Equal(t, 1, strings.Count(methods["update"], orm), name)
		assert.Equal(t, 1, strings.Count(methods["get_by_id"], ".to_domain()"), name)

		assert.Equal(t, 0, strings.Count(methods["add"], ".to_domain()"), name)
		assert.Equal(t, 0, strings.Count(methods["get_by_id"], "from_domain("), name)
		assert.Equal(t, 0, strings.Count(methods["update"], ".to_domain()"), name)
	}
}

func TestTemplates(t *testing.T) {
	list := Templates()
	require.Len(t, list, 8)
	assert.Equal(t, "src/infrastructure/repositories/sql_{lower}_repository.py", list[5].Pattern())
	assert.Equal(t, ReminderPath, list[7].Pattern())

	list[0].Dir = "changed"
	assert.Equal(t, "src/domain/models", Templates()[0].Dir)

	for _, tmpl := range list {
		body, err := tmpl.body()
		require.NoError(t, err, tmpl.Kind)
		assert.NotEmpty(t, body)
	}
}

func filesByKind(files []File) map[Kind]string {
	out := map[Kind]string{}
	for i, t := range templates {
		out[t.Kind] = files[i].Content
	}
	return out
}

// pythonMethods splits a generated class body by "async def" blocks.
func pythonMethods(src string) map[string]string {
	out := map[string]string{}
	parts := strings.Split(src, "    async def ")
	for _, part := range parts[1:] {
		name := part[:strings.Index(part, "(")]
		out[name] = part
	}
	return out
}

func TestGenerate_EndpointImportsMatchPaths(t *testing.T) {
	for _, name := range []string{"Supplier", "ingredient"} {
		files, err := Generate(name)
		require.NoError(t, err)
		endpoint := filesByKind(files)[KindEndpoint]

		for _, f := range files[:6] {
			if f.Path == files[1].Path || f.Path == files[4].Path {
				// the abstract repository and orm model are imported by other files
				continue
			}
			module := strings.ReplaceAll(strings.TrimSuffix(strings.TrimPrefix(f.Path, "src/"), Ext), "/", ".")
			assert.Contains(t, endpoint, "from "+module+" import", f.Path)
		}
	}
}

func TestTemplatePath_KeepsRawStem(t *testing.T) {
	tests := []struct {
		kind   Kind
		lower  string
		expect string
	}{
		{KindModel, "../../../tmp/x", "src/domain/models/../../../tmp/x.py"},
		{KindSQLRepository, "a/b", "src/infrastructure/repositories/sql_a/b_repository.py"},
		{KindRouterReminder, "../x", ReminderPath},
	}

	for _, tt := range tests {
		for _, tmpl := range Templates() {
			if tmpl.Kind == tt.kind {
				assert.Equal(t, tt.expect, tmpl.Path(tt.lower))
			}
		}
	}
}
