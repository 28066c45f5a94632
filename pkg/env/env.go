// Package env detects which deployment environment the current request runs
// in, either from the server name or from the APP_ENV variable.
package env

import (
	"errors"
	"os"
	"slices"

	"github.com/fyrsmithlabs/bebop/pkg/site"
)

// ErrInvalidKey is returned when an environment key is empty.
var ErrInvalidKey = errors.New("env: key must be a non-empty string")

// AppEnvVar names the process variable consulted for environments without
// hosts.
const AppEnvVar = "APP_ENV"

// Probe reports the facts environment detection depends on.
type Probe interface {
	ServerName() string
	AppEnv() string
}

// StaticProbe is a Probe with fixed answers.
type StaticProbe struct {
	Server string
	App    string
}

func (p StaticProbe) ServerName() string { return p.Server }
func (p StaticProbe) AppEnv() string     { return p.App }

type osProbe struct {
	server string
}

// OSProbe answers with the server name of s and APP_ENV from the process
// environment.
func OSProbe(s site.Site) Probe {
	return osProbe{server: s.ServerName}
}

func (p osProbe) ServerName() string { return p.server }
func (p osProbe) AppEnv() string     { return os.Getenv(AppEnvVar) }

// Env is a named environment with an optional list of hosts.
type Env struct {
	key   string
	hosts []string
}

func New(key string) (*Env, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}
	return &Env{key: key}, nil
}

func (e *Env) Key() string {
	return e.key
}

// AddHost appends host. Empty hosts are ignored.
func (e *Env) AddHost(host string) *Env {
	if host != "" {
		e.hosts = append(e.hosts, host)
	}
	return e
}

func (e *Env) AddHosts(hosts ...string) *Env {
	for _, h := range hosts {
		e.AddHost(h)
	}
	return e
}

// Hosts returns a copy of the host list.
func (e *Env) Hosts() []string {
	return slices.Clone(e.hosts)
}

func (e *Env) HasHost(host string) bool {
	return slices.Contains(e.hosts, host)
}

// IsCurrent reports whether p describes this environment. With hosts
// configured the server name must be one of them; otherwise APP_ENV must
// equal the key. A nil probe matches nothing.
func (e *Env) IsCurrent(p Probe) bool {
	if p == nil {
		return false
	}
	if len(e.hosts) > 0 {
		return e.HasHost(p.ServerName())
	}
	app := p.AppEnv()
	return app != "" && app == e.key
}
