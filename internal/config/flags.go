package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags shared by both binaries.
//
// Flags:
//
//	-a API address of the vocabulary server in format [host]:[port]
//	-listen reference backend listen address in format [host]:[port]
//	-request-timeout API request timeout (e.g. "10s")
//	-d SQLite credential store path
//	-secret-key key sealing the credential store values
//	-quiz-delay pause after a correct quiz answer (e.g. "1s")
//	-log-file client log path
//	-c/-config JSON config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var apiAddress, listenAddress NetAddress
	var requestTimeout, quizDelay time.Duration
	var databaseDSN, secretKey, logFile, jsonConfigPath string

	fs := flag.NewFlagSet("vocab", flag.ContinueOnError)
	fs.Var(&apiAddress, "a", "API address host:port")
	fs.Var(&listenAddress, "listen", "Reference backend listen address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "API request timeout (e.g. 10s)")
	fs.StringVar(&databaseDSN, "d", "", "SQLite credential store path")
	fs.StringVar(&secretKey, "secret-key", "", "Credential store secret key")
	fs.DurationVar(&quizDelay, "quiz-delay", 0, "Pause after a correct quiz answer (e.g. 1s)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			SecretKey:        secretKey,
			QuizAdvanceDelay: quizDelay,
			LogFile:          logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress: listenAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The port must be positive and the host must be
// "localhost" or an IP address.
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

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
