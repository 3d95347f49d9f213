package environment

import "os"

// Source looks up a configuration value by key. An empty string means the
// source does not provide the value.
type Source interface {
	Get(key string) string
}

// SourceFunc adapts a plain lookup function to [Source].
type SourceFunc func(key string) string

// Get implements [Source].
func (f SourceFunc) Get(key string) string {
	return f(key)
}

// MapSource is a fixed set of values.
type MapSource map[string]string

// Get implements [Source].
func (m MapSource) Get(key string) string {
	return m[key]
}

// OSEnv returns the runtime-dynamic source: the process environment as it
// is at the moment of each lookup.
func OSEnv() Source {
	return SourceFunc(os.Getenv)
}

// Build-time values. Set them with
//
//	go build -ldflags "-X github.com/MKhiriev/go-notice-web/internal/environment.staticAPIBaseURL=https://api.example.org/api"
var (
	staticAPIBaseURL       string
	staticRecaptchaSiteKey string
)

// Static returns the build-time source populated through linker flags.
func Static() Source {
	return MapSource{
		KeyAPIBaseURL:       staticAPIBaseURL,
		KeyRecaptchaSiteKey: staticRecaptchaSiteKey,
	}
}
