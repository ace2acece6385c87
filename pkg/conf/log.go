package conf

type Log struct {
	Label        string `yaml:"label" env:"LOG_LABEL"`
	LogFileName  string `yaml:"file_name" env:"LOG_FILE_NAME" env-default:"suitex.log"`
	LogDirPath   string `yaml:"dir_path" env:"LOG_DIR_PATH"`
	LogLevel     string `yaml:"log_level" env:"LOG_LEVEL" env-default:"warn" validate:"omitempty,oneof=debug info warn error fatal panic"`
	MaxSize      int    `yaml:"max_size" env:"LOG_MAX_SIZE" validate:"gte=0"`
	MaxBackups   int    `yaml:"max_backups" env:"LOG_MAX_BACKUPS" validate:"gte=0"`
	Compress     bool   `yaml:"log_compress" env:"LOG_COMPRESS"`
	DisableQuote bool   `yaml:"disable_quote" env:"LOG_DISABLE_QUOTE"`

	// ToFile sends logs to LogDirPath/LogFileName through lumberjack instead of stderr.
	ToFile bool `yaml:"to_file" env:"LOG_TO_FILE"`
	IsJson bool `yaml:"is_json" env:"LOG_IS_JSON"`

	EnableCaller bool `yaml:"enable_caller" env:"LOG_ENABLE_CALLER"`
}
