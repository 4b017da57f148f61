package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (Postgres URI for the server, SQLite path for the client)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-blobs-endpoint object store endpoint
//	-blobs-region object store region
//	-blobs-bucket photo bucket name
//	-blobs-access-key object store access key
//	-blobs-secret-key object store secret key
//	-remote-address record store base address (client)
//	-insights-address health analysis API base address (client)
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var blobsEndpoint, blobsRegion, blobsBucket string
	var blobsAccessKey, blobsSecretKey string
	var remoteAddress string
	var insightsAddress string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&blobsEndpoint, "blobs-endpoint", "", "Object store endpoint")
	flag.StringVar(&blobsRegion, "blobs-region", "", "Object store region")
	flag.StringVar(&blobsBucket, "blobs-bucket", "", "Photo bucket name")
	flag.StringVar(&blobsAccessKey, "blobs-access-key", "", "Object store access key")
	flag.StringVar(&blobsSecretKey, "blobs-secret-key", "", "Object store secret key")
	flag.StringVar(&remoteAddress, "remote-address", "", "Record store base address")
	flag.StringVar(&insightsAddress, "insights-address", "", "Health analysis API base address")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Blobs: Blobs{
			Endpoint:  blobsEndpoint,
			Region:    blobsRegion,
			Bucket:    blobsBucket,
			AccessKey: blobsAccessKey,
			SecretKey: blobsSecretKey,
		},
		Adapter: Adapter{
			HTTPAddress:     remoteAddress,
			InsightsAddress: insightsAddress,
			RequestTimeout:  requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string so that the
// zero value does not shadow other config sources during the merge.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
