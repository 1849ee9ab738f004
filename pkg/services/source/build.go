package source

import "fmt"

const (
	KindOpenCost = "opencost"
	KindFixture  = "fixture"
)

// Build creates the source of kind from reg. With fallback set, transport
// failures of a non-fixture source are served from the fixture source. The
// result is instrumented under kind.
func Build(reg Registry, kind string, settings Settings, fallback bool) (Source, error) {
	src, err := reg.Create(kind, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s source: %w", kind, err)
	}

	if fallback && kind != KindFixture {
		fb, err := reg.Create(KindFixture, settings)
		if err != nil {
			return nil, fmt.Errorf("failed to create fallback source: %w", err)
		}
		src = WithFallback(src, fb)
	}

	return Instrumented(kind, src), nil
}
