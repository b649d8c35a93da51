package config

import (
	"log"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig contiene la configuración del servicio, cargada desde variables de entorno
type AppConfig struct {
	Port              string `mapstructure:"PORT"`
	StrapiURL         string `mapstructure:"STRAPI_URL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	DBHost            string `mapstructure:"DB_HOST"`
	DBPort            string `mapstructure:"DB_PORT"`
	DBUser            string `mapstructure:"DB_USER"`
	DBPassword        string `mapstructure:"DB_PASSWORD"`
	DBName            string `mapstructure:"DB_NAME"`
	RabbitMQURL       string `mapstructure:"RABBITMQ_URL"`
	PrometheusEnabled bool   `mapstructure:"PROMETHEUS_ENABLED"`
	// PurchaseRollback habilita el modo compensado: si falla una reducción de
	// stock se revierten las reducciones ya aplicadas y la compra falla
	PurchaseRollback bool `mapstructure:"PURCHASE_ROLLBACK_ENABLED"`
}

// defaults por clave de entorno
var defaults = map[string]any{
	"PORT":                      "4000",
	"STRAPI_URL":                "http://localhost:1337/api",
	"JWT_SECRET":                "",
	"DB_HOST":                   "localhost",
	"DB_PORT":                   "5432",
	"DB_USER":                   "postgres",
	"DB_PASSWORD":               "postgres",
	"DB_NAME":                   "pos_db",
	"RABBITMQ_URL":              "",
	"PROMETHEUS_ENABLED":        false,
	"PURCHASE_ROLLBACK_ENABLED": false,
}

// LoadConfig carga la configuración desde el entorno usando viper
func LoadConfig() *AppConfig {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	cfg := &AppConfig{}
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		envKey := t.Field(i).Tag.Get("mapstructure")
		if envKey == "" {
			continue
		}
		if err := viper.BindEnv(envKey); err != nil {
			log.Fatalf("Error al enlazar la variable de entorno %s: %v", envKey, err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("Error al decodificar la configuración: %v", err)
	}

	return cfg
}

// DatabaseURL construye el string de conexión para PostgreSQL
func (c *AppConfig) DatabaseURL() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=disable"
}
