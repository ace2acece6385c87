package conf

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

const DefaultConfigFile = "suitex.yml"

type Suite struct {
	// Root is the project directory the generated src/ tree is written under.
	Root   string `yaml:"root" env:"SUITEX_ROOT" env-default:"." validate:"required"`
	DryRun bool   `yaml:"dry_run" env:"SUITEX_DRY_RUN"`

	Log Log `yaml:"log"`
}

// Load reads file when it exists and fills the rest from the environment.
// A missing DefaultConfigFile is not an error, any other missing file is.
func Load(file string) (*Suite, error) {
	c := &Suite{}
	if file == "" {
		file = DefaultConfigFile
	}

	if _, err := os.Stat(file); err == nil {
		if err := cleanenv.ReadConfig(file, c); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	} else if os.IsNotExist(err) && file == DefaultConfigFile {
		if err := cleanenv.ReadEnv(c); err != nil {
			return nil, errors.Wrap(err, "read config from env")
		}
	} else {
		return nil, errors.Wrapf(err, "stat config %s", file)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Suite) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
