// Package dsn resolves a libpq-style connection string or URL, the PG*
// environment variables, ~/.pgpass, and ~/.pg_service.conf into a
// pgconn.ConnConfig. It never dials: the caller is responsible for turning
// the resolved Host/Port into a Transport (e.g. net.Dial, then pgconn.Connect
// over whatever it returns), matching the core's refusal to own networking
// or TLS (§1/§6).
package dsn

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/user"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgpassfile"
	"github.com/jackc/pgservicefile"

	"github.com/hlandau/pgwire/pgconn"
)

// DialFunc opens a transport to address over network. The signature matches
// net.Dialer.DialContext; pgconn.Connect accepts anything satisfying
// pgconn.Transport, so the result needs no further adaptation.
type DialFunc func(ctx context.Context, network, address string) (pgconn.Transport, error)

// NetworkAddress converts a resolved Host/Port into the network and address
// DefaultDial (or net.Dialer.DialContext) expects, matching libpq's
// Unix-domain-socket convention: a Host beginning with "/" names the
// directory holding the socket file, not a hostname.
func NetworkAddress(host string, port uint16) (network, address string) {
	if strings.HasPrefix(host, "/") {
		return "unix", filepath.Join(host, ".s.PGSQL."+strconv.Itoa(int(port)))
	}
	return "tcp", net.JoinHostPort(host, strconv.Itoa(int(port)))
}

// DefaultDial is the DialFunc Parse's caller uses unless it substitutes its
// own (e.g. to wrap the result in TLS, which this package deliberately does
// not attempt — see §1/§6's transport boundary).
func DefaultDial(ctx context.Context, network, address string) (pgconn.Transport, error) {
	var d net.Dialer
	return d.DialContext(ctx, network, address)
}

// notRuntimeParams are libpq keywords this package consumes itself rather
// than forwarding as a StartupMessage runtime parameter.
var notRuntimeParams = map[string]struct{}{
	"host":            {},
	"port":            {},
	"dbname":          {},
	"database":        {},
	"user":            {},
	"password":        {},
	"passfile":        {},
	"service":         {},
	"servicefile":     {},
	"connect_timeout": {},
	"sslmode":         {},
	"sslkey":          {},
	"sslcert":         {},
	"sslrootcert":     {},
}

// Parse builds a pgconn.ConnConfig from connString, which may be a libpq
// keyword/value DSN ("host=localhost user=jack dbname=mydb"), a
// "postgres://" URL, or empty (meaning: read only the environment and
// defaults). It recognizes the PG* environment variables libpq does and,
// when connString or the environment names a service, consults
// ~/.pg_service.conf; when no password is given anywhere else, it consults
// ~/.pgpass.
func Parse(connString string) (pgconn.ConnConfig, error) {
	settings := defaultSettings()
	addEnvSettings(settings)

	if connString != "" {
		if strings.HasPrefix(connString, "postgres://") || strings.HasPrefix(connString, "postgresql://") {
			if err := addURLSettings(settings, connString); err != nil {
				return pgconn.ConnConfig{}, fmt.Errorf("dsn: %w", err)
			}
		} else {
			if err := addDSNSettings(settings, connString); err != nil {
				return pgconn.ConnConfig{}, fmt.Errorf("dsn: %w", err)
			}
		}
	}

	if service := settings["service"]; service != "" {
		if err := addServiceSettings(settings, service); err != nil {
			return pgconn.ConnConfig{}, fmt.Errorf("dsn: %w", err)
		}
	}

	port, err := parsePort(settings["port"])
	if err != nil {
		return pgconn.ConnConfig{}, fmt.Errorf("dsn: invalid port %q: %w", settings["port"], err)
	}

	database := settings["dbname"]
	if database == "" {
		database = settings["database"]
	}

	config := pgconn.ConnConfig{
		Host:          settings["host"],
		Port:          port,
		Database:      database,
		User:          settings["user"],
		Password:      settings["password"],
		RuntimeParams: make(map[string]string),
	}

	for k, v := range settings {
		if _, reserved := notRuntimeParams[k]; reserved {
			continue
		}
		config.RuntimeParams[k] = v
	}

	if config.Password == "" {
		config.Password = lookupPgpass(settings, config)
	}

	return config, nil
}

func defaultSettings() map[string]string {
	settings := map[string]string{
		"host": "localhost",
		"port": "5432",
	}

	if u, err := user.Current(); err == nil {
		settings["user"] = u.Username
		settings["passfile"] = filepath.Join(u.HomeDir, ".pgpass")
		settings["servicefile"] = filepath.Join(u.HomeDir, ".pg_service.conf")
	}

	return settings
}

func addEnvSettings(settings map[string]string) {
	nameMap := map[string]string{
		"PGHOST":            "host",
		"PGPORT":            "port",
		"PGDATABASE":        "dbname",
		"PGUSER":            "user",
		"PGPASSWORD":        "password",
		"PGPASSFILE":        "passfile",
		"PGSERVICE":         "service",
		"PGSERVICEFILE":     "servicefile",
		"PGAPPNAME":         "application_name",
		"PGCONNECT_TIMEOUT": "connect_timeout",
		"PGSSLMODE":         "sslmode",
		"PGSSLKEY":          "sslkey",
		"PGSSLCERT":         "sslcert",
		"PGSSLROOTCERT":     "sslrootcert",
	}
	for envname, realname := range nameMap {
		if v := os.Getenv(envname); v != "" {
			settings[realname] = v
		}
	}
}

func addURLSettings(settings map[string]string, connString string) error {
	u, err := url.Parse(connString)
	if err != nil {
		return err
	}

	if u.User != nil {
		settings["user"] = u.User.Username()
		if password, present := u.User.Password(); present {
			settings["password"] = password
		}
	}

	if host, port, ok := strings.Cut(u.Host, ":"); ok {
		settings["host"] = host
		settings["port"] = port
	} else if u.Host != "" {
		settings["host"] = u.Host
	}

	if database := strings.TrimPrefix(u.Path, "/"); database != "" {
		settings["dbname"] = database
	}

	for k, v := range u.Query() {
		settings[k] = v[0]
	}

	return nil
}

var dsnRegexp = regexp.MustCompile(`([a-zA-Z_]+)=((?:'(?:[^'\\]|\\.)*')|(?:[^'\s]+))`)

func addDSNSettings(settings map[string]string, s string) error {
	for _, m := range dsnRegexp.FindAllStringSubmatch(s, -1) {
		v := m[2]
		if strings.HasPrefix(v, "'") {
			v = strings.ReplaceAll(v[1:len(v)-1], `\'`, "'")
		}
		settings[m[1]] = v
	}
	return nil
}

func addServiceSettings(settings map[string]string, service string) error {
	servicefile, err := pgservicefile.ReadServicefile(settings["servicefile"])
	if err != nil {
		return fmt.Errorf("could not read service file: %w", err)
	}

	svc, err := servicefile.GetService(service)
	if err != nil {
		return fmt.Errorf("could not find service %q: %w", service, err)
	}

	for k, v := range svc.Settings {
		if _, present := settings[k]; !present {
			settings[k] = v
		}
	}

	return nil
}

func lookupPgpass(settings map[string]string, config pgconn.ConnConfig) string {
	passfile, err := pgpassfile.ReadPassfile(settings["passfile"])
	if err != nil {
		return ""
	}
	return passfile.FindPassword(config.Host, strconv.Itoa(int(config.Port)), config.Database, config.User)
}

func parsePort(s string) (uint16, error) {
	port, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	if port < 1 {
		return 0, fmt.Errorf("port must be positive")
	}
	return uint16(port), nil
}
