package cssmodules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceMapResolveIdentityWithoutMappings(t *testing.T) {
	var m *SourceMap
	loc := m.resolve("generated.css", 3, 4)
	require.Equal(t, Location{FilePath: "generated.css", Line: 3, Column: 4}, loc)
}

func TestSourceMapResolveNearestMapping(t *testing.T) {
	m := &SourceMap{Mappings: []SourceMapping{
		{GeneratedLine: 1, GeneratedColumn: 0, OriginalLine: 1, OriginalColumn: 0, OriginalFile: "src.scss"},
		{GeneratedLine: 5, GeneratedColumn: 0, OriginalLine: 10, OriginalColumn: 2, OriginalFile: "src.scss"},
	}}
	loc := m.resolve("generated.css", 6, 1)
	require.Equal(t, Location{FilePath: "src.scss", Line: 10, Column: 2}, loc)
}

func TestBuildPositionMapperNil(t *testing.T) {
	mapper := buildPositionMapper("a.css", nil)
	require.Equal(t, Location{FilePath: "a.css", Line: 2, Column: 3}, mapper(2, 3))
}
