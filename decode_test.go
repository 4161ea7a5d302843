package gopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	p := Record(
		Field("host", Default(Opt(Str(), Named(Long("host"))), "localhost")),
		Field("port", Default(Opt(Int(), Named(Long("port"))), int64(5432))),
		Field("tags", Many(Opt(Str(), Named(Long("tag"))))),
		Field("tls", Default(Flag(true, Named(Long("tls"))), false)),
	)
	val, err := Parse(p, []string{"--port", "6543", "--tag", "a", "--tag", "b", "--tls"}, Prefs{})
	require.NoError(t, err)
	var cfg struct {
		Host string   `gopt:"host"`
		Port int      `gopt:"port"`
		Tags []string `gopt:"tags"`
		TLS  bool     `gopt:"tls"`
	}
	require.NoError(t, Decode(val, &cfg))
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)
	assert.True(t, cfg.TLS)
}

func TestDecodeNested(t *testing.T) {
	p := Record(
		Field("name", Arg(Str(), Meta("NAME"))),
		Field("db", Record(
			Field("host", Default(Opt(Str(), Named(Long("db-host"))), "127.0.0.1")),
			Field("port", Default(Opt(Int(), Named(Long("db-port"))), int64(5432))),
		)),
	)
	val, err := Parse(p, []string{"svc", "--db-port", "6000"}, Prefs{})
	require.NoError(t, err)
	var cfg struct {
		Name string `gopt:"name"`
		DB   struct {
			Host string `gopt:"host"`
			Port int    `gopt:"port"`
		} `gopt:"db"`
	}
	require.NoError(t, Decode(val, &cfg))
	assert.Equal(t, "svc", cfg.Name)
	assert.Equal(t, "127.0.0.1", cfg.DB.Host)
	assert.Equal(t, 6000, cfg.DB.Port)
}

func TestDecodeFieldOverride(t *testing.T) {
	p := Record(
		Field("v", Pure(1)),
		Field("v", Pure(2)),
	)
	val, err := Parse(p, nil, Prefs{})
	require.NoError(t, err)
	var cfg struct {
		V int `gopt:"v"`
	}
	require.NoError(t, Decode(val, &cfg))
	assert.Equal(t, 2, cfg.V)
}

func TestDecodeMap(t *testing.T) {
	p := Field("labels", Default(Opt(KV(Str(), Str()), Named(Long("labels"))), map[any]any{}))
	val, err := Parse(p, []string{"--labels", "{app:web,tier:front}"}, Prefs{})
	require.NoError(t, err)
	var cfg struct {
		Labels map[string]string `gopt:"labels"`
	}
	require.NoError(t, Decode(val, &cfg))
	assert.Equal(t, map[string]string{"app": "web", "tier": "front"}, cfg.Labels)
}
