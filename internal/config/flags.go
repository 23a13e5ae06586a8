package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// extensionList is a comma separated flag.Value.
type extensionList []string

func (e *extensionList) String() string {
	return strings.Join(*e, ",")
}

func (e *extensionList) Set(s string) error {
	for _, ext := range strings.Split(s, ",") {
		if ext = strings.TrimSpace(ext); ext != "" {
			*e = append(*e, ext)
		}
	}
	return nil
}

// ParseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-k shared upload secret (API key)
//	-u upload directory
//	-s shared directory
//	-storage storage backend: local or minio
//	-extensions comma separated extension allow-list
//	-allow-unsafe-names accept filenames with separators, quotes or dot segments
//	-serialize-writes lock uploads per filename
//	-read-header-timeout server read header timeout (e.g. "5s")
//	-log-level zerolog level name
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var apiKey string
	var uploadDir, sharedDir string
	var backend string
	var extensions extensionList
	var allowUnsafeNames, serializeWrites bool
	var readHeaderTimeout time.Duration
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("file-drop-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&apiKey, "k", "", "Shared upload secret")
	fs.StringVar(&uploadDir, "u", "", "Upload directory")
	fs.StringVar(&sharedDir, "s", "", "Shared directory")
	fs.StringVar(&backend, "storage", "", "Storage backend (local, minio)")
	fs.Var(&extensions, "extensions", "Comma separated extension allow-list")
	fs.BoolVar(&allowUnsafeNames, "allow-unsafe-names", false, "Accept unsafe filenames verbatim")
	fs.BoolVar(&serializeWrites, "serialize-writes", false, "Serialize uploads per filename")
	fs.DurationVar(&readHeaderTimeout, "read-header-timeout", 0, "Read header timeout (e.g., 5s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			APIKey:   apiKey,
			LogLevel: logLevel,
		},
		Storage: Storage{
			Backend: backend,
			Files: Files{
				UploadDir: uploadDir,
				SharedDir: sharedDir,
			},
		},
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		Upload: Upload{
			AllowedExtensions: extensions,
			AllowUnsafeNames:  allowUnsafeNames,
			SerializeWrites:   serializeWrites,
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

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
