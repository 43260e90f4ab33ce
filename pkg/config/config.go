package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Pod  PodConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PodConfig configuración del servicio externo de almacenamiento de documentos ("pod").
// Se resuelve una sola vez al arranque y se inyecta en el cliente de push;
// el dispatcher nunca lee variables de entorno de forma ambiental.
type PodConfig struct {
	BaseURL   string // URL base del servicio (ej. https://pods.example.com)
	PodID     string // Identificador del pod que actualiza la factura (POD_UPDATE_INVOICE_ID)
	Namespace string // Namespace de la instancia (INSTANCE_NAMESPACE)
	AuthToken string // Bearer token (POD_UPDATE_INVOICE_AUTH_TOKEN)
}

// missingVars devuelve las variables de entorno requeridas que no llegaron.
// Sin cualquiera de ellas el push al pod no puede construirse.
func (c PodConfig) missingVars() []string {
	var missing []string
	if c.BaseURL == "" {
		missing = append(missing, "POD_BASE_URL")
	}
	if c.PodID == "" {
		missing = append(missing, "POD_UPDATE_INVOICE_ID")
	}
	if c.Namespace == "" {
		missing = append(missing, "INSTANCE_NAMESPACE")
	}
	if c.AuthToken == "" {
		missing = append(missing, "POD_UPDATE_INVOICE_AUTH_TOKEN")
	}
	return missing
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, POD_BASE_URL, etc.
// La configuración del pod se valida aquí: una variable ausente aborta el
// arranque en vez de aparecer después como una URL de push malformada.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "peppol-invoice-api"),
			LogLevel: getString(v, "APP_LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Pod: PodConfig{
			BaseURL:   getString(v, "POD_BASE_URL", ""),
			PodID:     getString(v, "POD_UPDATE_INVOICE_ID", ""),
			Namespace: getString(v, "INSTANCE_NAMESPACE", ""),
			AuthToken: getString(v, "POD_UPDATE_INVOICE_AUTH_TOKEN", ""),
		},
	}

	if missing := cfg.Pod.missingVars(); len(missing) > 0 {
		return nil, fmt.Errorf("configuración del pod incompleta: faltan %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
