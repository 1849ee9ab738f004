package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	stub := func(Settings) (Source, error) { return &mockSource{}, nil }

	t.Run("create registered kind", func(t *testing.T) {
		r := NewRegistry(map[string]Factory{"fixture": stub})

		src, err := r.Create("fixture", Settings{})
		require.NoError(t, err)
		assert.NotNil(t, src)
	})

	t.Run("unknown kind", func(t *testing.T) {
		r := NewRegistry(nil)

		_, err := r.Create("missing", Settings{})
		assert.EqualError(t, err, `source "missing" is not registered`)
	})

	t.Run("register validates input", func(t *testing.T) {
		r := NewRegistry(map[string]Factory{"fixture": stub})

		assert.Error(t, r.Register("", stub))
		assert.Error(t, r.Register("opencost", nil))
		assert.EqualError(t, r.Register("fixture", stub), `source "fixture" is already registered`)
		assert.NoError(t, r.Register("opencost", stub))
	})

	t.Run("kinds are sorted", func(t *testing.T) {
		r := NewRegistry(map[string]Factory{"opencost": stub, "fixture": stub})
		require.NoError(t, r.Register("aaa", stub))

		assert.Equal(t, []string{"aaa", "fixture", "opencost"}, r.ListKinds())
	})
}

func TestBuild(t *testing.T) {
	var created []string
	factory := func(kind string) Factory {
		return func(Settings) (Source, error) {
			created = append(created, kind)
			return &mockSource{}, nil
		}
	}
	r := NewRegistry(map[string]Factory{
		KindOpenCost: factory(KindOpenCost),
		KindFixture:  factory(KindFixture),
	})

	tests := []struct {
		name     string
		kind     string
		fallback bool
		want     []string
		wantErr  bool
	}{
		{name: "live only", kind: KindOpenCost, want: []string{KindOpenCost}},
		{name: "live with fallback", kind: KindOpenCost, fallback: true, want: []string{KindOpenCost, KindFixture}},
		{name: "fixture ignores fallback", kind: KindFixture, fallback: true, want: []string{KindFixture}},
		{name: "unknown kind", kind: "prometheus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created = nil
			src, err := Build(r, tt.kind, Settings{BaseURL: "http://localhost:9003"}, tt.fallback)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, &instrumentedSource{}, src)
			assert.Equal(t, tt.want, created)
		})
	}
}
