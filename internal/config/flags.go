package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the web front flags from args into fs.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-env application mode (development, production, test)
//	-log-level zerolog level
//	-env-file dotenv file path
//	-backend backend API base URL for the /api proxy
//	-proxy-timeout backend round trip timeout (e.g., "30s")
//	-client-base-url API root used by pages
//	-client-timeout API client request timeout
//	-read-timeout server read timeout
//	-write-timeout server write timeout
//	-shutdown-timeout graceful shutdown timeout
//	-c/-config json file path with configs
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var environment, logLevel, envFile string
	var backendURL, clientBaseURL string
	var proxyTimeout, clientTimeout time.Duration
	var readTimeout, writeTimeout, shutdownTimeout time.Duration
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address [host]:port")
	fs.StringVar(&environment, "env", "", "Application mode (development, production, test)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&envFile, "env-file", "", "Dotenv file path")
	fs.StringVar(&backendURL, "backend", "", "Backend API base URL")
	fs.DurationVar(&proxyTimeout, "proxy-timeout", 0, "Backend round trip timeout (e.g., 30s)")
	fs.StringVar(&clientBaseURL, "client-base-url", "", "API root used by pages")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "API client request timeout (e.g., 15s)")
	fs.DurationVar(&readTimeout, "read-timeout", 0, "Server read timeout")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Server write timeout")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
			LogLevel:    logLevel,
			EnvFile:     envFile,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Proxy: Proxy{
			BackendURL: backendURL,
			Timeout:    proxyTimeout,
		},
		Client: Client{
			BaseURL:        clientBaseURL,
			RequestTimeout: clientTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. The host may be empty (all interfaces), "localhost" or an IP
// address; the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `[host]:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
