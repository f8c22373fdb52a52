package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultUserAgent          = "LeadForgeApp/0.1 contact@example.com"

	defaultSearchLimit      = 30
	defaultSearchMaxLimit   = 100
	defaultEnrichmentBudget = 5

	defaultNominatimURL     = "https://nominatim.openstreetmap.org/search"
	defaultOverpassURL      = "https://overpass-api.de/api/interpreter"
	defaultGooglePlacesURL  = "https://maps.googleapis.com/maps/api/place"
	defaultOverpassTimeout  = 30 * time.Second
	defaultOverpassPadding  = 10 * time.Second
	defaultUpstreamTimeout  = 10 * time.Second
	defaultNominatimRate    = 1.0
	defaultGooglePlacesRate = 10.0
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		// AllowOrigins lists the frontends permitted by CORS. Empty allows any origin.
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		// SearchRateLimit is the per-IP requests/second allowed on search routes. Zero disables it.
		SearchRateLimit float64 `json:"searchRateLimit" yaml:"searchRateLimit"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Migrate controls goose migrations for the service database
	Migrate *MigrateConfig `json:"migrate" yaml:"migrate"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Cache configuration for upstream lookup caching
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Nominatim configuration for geocoding
	Nominatim *NominatimConfig `json:"nominatim" yaml:"nominatim"`

	// Overpass configuration for the OSM place source
	Overpass *OverpassConfig `json:"overpass" yaml:"overpass"`

	// GooglePlaces configuration for result enrichment
	GooglePlaces *GooglePlacesConfig `json:"googlePlaces" yaml:"googlePlaces"`

	// Search configuration for the search pipeline
	Search *SearchConfig `json:"search" yaml:"search"`

	// Leads configuration for saved leads
	Leads *LeadsConfig `json:"leads" yaml:"leads"`

	// QRCode configuration for lead QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MigrateConfig defines schema migration behaviour
type MigrateConfig struct {
	// AutoMigrate runs pending migrations when the API starts
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int `json:"bcryptCost" yaml:"bcryptCost"`
	MinPasswordLength int `json:"minPasswordLength" yaml:"minPasswordLength"`
}

// CacheConfig selects and configures the shared lookup cache
type CacheConfig struct {
	// Provider is "redis" or "badger"
	Provider  string `json:"provider" yaml:"provider"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`

	Redis struct {
		URL string `json:"url" yaml:"url"`
	} `json:"redis" yaml:"redis"`

	Badger struct {
		Path     string `json:"path" yaml:"path"`
		InMemory bool   `json:"inMemory" yaml:"inMemory"`
	} `json:"badger" yaml:"badger"`
}

// NominatimConfig defines the geocoding upstream
type NominatimConfig struct {
	URL       string        `json:"url" yaml:"url"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	// RatePerSecond is the client-side request rate. Nominatim's usage policy allows 1.
	RatePerSecond float64       `json:"ratePerSecond" yaml:"ratePerSecond"`
	CacheTTL      time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// OverpassConfig defines the OSM place source upstream
type OverpassConfig struct {
	URL       string `json:"url" yaml:"url"`
	UserAgent string `json:"userAgent" yaml:"userAgent"`
	// QueryTimeout is declared inside the Overpass QL query
	QueryTimeout time.Duration `json:"queryTimeout" yaml:"queryTimeout"`
	// ClientPadding is added to QueryTimeout for the HTTP client timeout
	ClientPadding time.Duration `json:"clientPadding" yaml:"clientPadding"`
}

// GooglePlacesConfig defines the enrichment upstream
type GooglePlacesConfig struct {
	APIKey        string        `json:"apiKey" yaml:"apiKey"`
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	RatePerSecond float64       `json:"ratePerSecond" yaml:"ratePerSecond"`
	// BiasRadiusMeters is the location bias radius for candidate lookup
	BiasRadiusMeters int           `json:"biasRadiusMeters" yaml:"biasRadiusMeters"`
	PhotoMaxWidth    int           `json:"photoMaxWidth" yaml:"photoMaxWidth"`
	PlaceIDTTL       time.Duration `json:"placeIdTtl" yaml:"placeIdTtl"`
	DetailsTTL       time.Duration `json:"detailsTtl" yaml:"detailsTtl"`
	FailureTTL       time.Duration `json:"failureTtl" yaml:"failureTtl"`
}

// SearchConfig defines search pipeline knobs
type SearchConfig struct {
	DefaultLimit     int `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit         int `json:"maxLimit" yaml:"maxLimit"`
	EnrichmentBudget int `json:"enrichmentBudget" yaml:"enrichmentBudget"`
	// NameMatch is "exact" or "pattern" for unmapped query terms
	NameMatch string `json:"nameMatch" yaml:"nameMatch"`
	// DefaultCategory is used when the query term is empty
	DefaultCategory string `json:"defaultCategory" yaml:"defaultCategory"`
}

// LeadsConfig defines saved lead behaviour
type LeadsConfig struct {
	// DefaultRegion is the ISO region used to parse national phone numbers
	DefaultRegion string `json:"defaultRegion" yaml:"defaultRegion"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Align each ENV_VAR_NAME segment with existing YAML keys.
			// Example: SEARCH_ENRICHMENTBUDGET -> search.enrichmentBudget
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	ApplyDefaults(cfg)

	return cfg, nil
}

// ApplyDefaults fills every zero-valued upstream and search knob.
func ApplyDefaults(cfg *Config) {
	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.Provider == "" {
		cfg.Cache.Provider = "badger"
		cfg.Cache.Badger.InMemory = true
	}

	if cfg.Nominatim == nil {
		cfg.Nominatim = &NominatimConfig{}
	}
	if cfg.Nominatim.URL == "" {
		cfg.Nominatim.URL = defaultNominatimURL
	}
	if cfg.Nominatim.UserAgent == "" {
		cfg.Nominatim.UserAgent = defaultUserAgent
	}
	if cfg.Nominatim.Timeout <= 0 {
		cfg.Nominatim.Timeout = defaultUpstreamTimeout
	}
	if cfg.Nominatim.RatePerSecond <= 0 {
		cfg.Nominatim.RatePerSecond = defaultNominatimRate
	}
	if cfg.Nominatim.CacheTTL <= 0 {
		cfg.Nominatim.CacheTTL = 7 * 24 * time.Hour
	}

	if cfg.Overpass == nil {
		cfg.Overpass = &OverpassConfig{}
	}
	if cfg.Overpass.URL == "" {
		cfg.Overpass.URL = defaultOverpassURL
	}
	if cfg.Overpass.UserAgent == "" {
		cfg.Overpass.UserAgent = defaultUserAgent
	}
	if cfg.Overpass.QueryTimeout <= 0 {
		cfg.Overpass.QueryTimeout = defaultOverpassTimeout
	}
	if cfg.Overpass.ClientPadding <= 0 {
		cfg.Overpass.ClientPadding = defaultOverpassPadding
	}

	if cfg.GooglePlaces == nil {
		cfg.GooglePlaces = &GooglePlacesConfig{}
	}
	if cfg.GooglePlaces.BaseURL == "" {
		cfg.GooglePlaces.BaseURL = defaultGooglePlacesURL
	}
	if cfg.GooglePlaces.Timeout <= 0 {
		cfg.GooglePlaces.Timeout = defaultUpstreamTimeout
	}
	if cfg.GooglePlaces.RatePerSecond <= 0 {
		cfg.GooglePlaces.RatePerSecond = defaultGooglePlacesRate
	}
	if cfg.GooglePlaces.BiasRadiusMeters <= 0 {
		cfg.GooglePlaces.BiasRadiusMeters = 2000
	}
	if cfg.GooglePlaces.PhotoMaxWidth <= 0 {
		cfg.GooglePlaces.PhotoMaxWidth = 800
	}
	if cfg.GooglePlaces.PlaceIDTTL <= 0 {
		cfg.GooglePlaces.PlaceIDTTL = 24 * time.Hour
	}
	if cfg.GooglePlaces.DetailsTTL <= 0 {
		cfg.GooglePlaces.DetailsTTL = 6 * time.Hour
	}
	if cfg.GooglePlaces.FailureTTL <= 0 {
		cfg.GooglePlaces.FailureTTL = 5 * time.Minute
	}

	if cfg.Search == nil {
		cfg.Search = &SearchConfig{}
	}
	if cfg.Search.MaxLimit <= 0 {
		cfg.Search.MaxLimit = defaultSearchMaxLimit
	}
	if cfg.Search.DefaultLimit <= 0 || cfg.Search.DefaultLimit > cfg.Search.MaxLimit {
		cfg.Search.DefaultLimit = min(defaultSearchLimit, cfg.Search.MaxLimit)
	}
	if cfg.Search.EnrichmentBudget <= 0 {
		cfg.Search.EnrichmentBudget = defaultEnrichmentBudget
	}

	if cfg.Leads == nil {
		cfg.Leads = &LeadsConfig{}
	}
	if cfg.Leads.DefaultRegion == "" {
		cfg.Leads.DefaultRegion = "US"
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = 256
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.MinPasswordLength <= 0 {
		cfg.Auth.MinPasswordLength = 8
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
