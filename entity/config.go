package entity

type Config struct {
	Server         ServerConfig   `yaml:"server"`
	PostgresConfig PostgresConfig `yaml:"database"`
	JWTSecretKey   string         `yaml:"jwt_secret"`
	MediaRoot      string         `yaml:"media_root"`
	Limits         LimitsConfig   `yaml:"limits"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
}

// LimitsConfig bounds recipe payload fields and list page sizes.
type LimitsConfig struct {
	MinAmount      float64 `yaml:"min_amount"`
	MaxAmount      float64 `yaml:"max_amount"`
	MinCookingTime int     `yaml:"min_cooking_time"`
	MaxCookingTime int     `yaml:"max_cooking_time"`
	PageSize       int     `yaml:"page_size"`
}
