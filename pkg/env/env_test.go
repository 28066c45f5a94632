package env

import (
	"testing"

	"github.com/fyrsmithlabs/bebop/pkg/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrInvalidKey)

	e, err := New("staging")
	require.NoError(t, err)
	assert.Equal(t, "staging", e.Key())
	assert.Empty(t, e.Hosts())
}

func TestEnv_Hosts(t *testing.T) {
	e, _ := New("production")
	e.AddHost("example.com").AddHosts("www.example.com", "", "cdn.example.com")

	assert.Equal(t, []string{"example.com", "www.example.com", "cdn.example.com"}, e.Hosts())
	assert.True(t, e.HasHost("www.example.com"))
	assert.False(t, e.HasHost("staging.example.com"))

	hosts := e.Hosts()
	hosts[0] = "mutated"
	assert.True(t, e.HasHost("example.com"))
}

func TestEnv_IsCurrent(t *testing.T) {
	withHosts, _ := New("production")
	withHosts.AddHost("example.com")
	bare, _ := New("staging")

	tests := []struct {
		name  string
		env   *Env
		probe StaticProbe
		want  bool
	}{
		{name: "host match", env: withHosts, probe: StaticProbe{Server: "example.com"}, want: true},
		{name: "host mismatch ignores APP_ENV", env: withHosts, probe: StaticProbe{Server: "other.com", App: "production"}, want: false},
		{name: "APP_ENV match", env: bare, probe: StaticProbe{App: "staging"}, want: true},
		{name: "APP_ENV mismatch", env: bare, probe: StaticProbe{App: "production"}, want: false},
		{name: "APP_ENV unset", env: bare, probe: StaticProbe{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.env.IsCurrent(tt.probe))
		})
	}
}

func TestOSProbe(t *testing.T) {
	t.Setenv(AppEnvVar, "staging")
	p := OSProbe(site.Site{ServerName: "example.com"})

	assert.Equal(t, "example.com", p.ServerName())
	assert.Equal(t, "staging", p.AppEnv())
}

func TestManager_Defaults(t *testing.T) {
	m := NewManager(StaticProbe{})

	assert.Equal(t, []string{Development, Staging, Production}, m.Keys())
	assert.Equal(t, Development, m.CurrentKey())
	assert.True(t, m.Is(Development))
	assert.False(t, m.Is(""))
}

func TestManager_AddReplaceRemove(t *testing.T) {
	m := NewManager(StaticProbe{})

	m.Get(Staging).AddHost("staging.example.com")
	m.Add(Staging)
	assert.True(t, m.Get(Staging).HasHost("staging.example.com"), "Add keeps an existing environment")

	m.Replace(Staging)
	assert.Empty(t, m.Get(Staging).Hosts(), "Replace installs a fresh environment")

	m.Add("qa").Add("")
	assert.True(t, m.Exists("qa"))
	assert.False(t, m.Exists(""))

	m.Remove("qa")
	assert.False(t, m.Exists("qa"))
	assert.Nil(t, m.Get("qa"))
}

func TestManager_Current(t *testing.T) {
	probe := StaticProbe{Server: "www.example.com", App: "staging"}
	m := NewManager(probe)

	assert.Equal(t, Staging, m.CurrentKey(), "APP_ENV picks staging")

	m.Get(Production).AddHosts("example.com", "www.example.com")
	assert.Equal(t, Staging, m.CurrentKey(), "insertion order wins")

	m.Get(Staging).AddHost("staging.example.com")
	assert.Equal(t, Production, m.CurrentKey())
}

func TestManager_CurrentRestoresDevelopment(t *testing.T) {
	m := NewManager(StaticProbe{})
	m.Remove(Development)

	assert.Equal(t, Development, m.CurrentKey())
	assert.True(t, m.Exists(Development))
}

func TestManager_NilProbe(t *testing.T) {
	m := NewManager(nil)
	m.Get(Production).AddHost("example.com")

	assert.Equal(t, Development, m.CurrentKey())
	assert.True(t, m.Is(Development))

	e, _ := New("qa")
	assert.False(t, e.IsCurrent(nil))
}
