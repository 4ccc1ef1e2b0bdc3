package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		word     string
		wantKind Kind
		wantName string
	}{
		{"bind", 0, "bind"},
		{"exec", 1, "exec"},
		{"set", 2, "set"},
		{"terminal", 4, "terminal"},
		{"visual", 5, "visual"},
		{"Set", 6, "string"},
		{"echo", 6, "string"},
		{"", 6, "string"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			v := Default()
			got := v.KindOf(tt.word)
			assert.Equal(t, tt.wantKind, got)
			assert.Equal(t, tt.wantName, v.Name(got))
		})
	}
}

func TestKindOfSortsFirst(t *testing.T) {
	v := Default()
	assert.False(t, v.Tokens.IsSorted())

	v.KindOf("exec")
	assert.True(t, v.Tokens.IsSorted())
	assert.True(t, v.Settings.IsSorted())
}

func TestReservedSlots(t *testing.T) {
	v := Default()
	assert.Equal(t, Kind(3), v.Offset())
	assert.Equal(t, Kind(6), v.StringKind())
	assert.Equal(t, "offset", v.Name(v.Offset()))
	assert.Equal(t, "string", v.Name(-1))
	assert.Equal(t, "string", v.Name(42))

	empty := &Vocabulary{}
	assert.Equal(t, Kind(0), empty.Offset())
	assert.Equal(t, Kind(1), empty.StringKind())
	assert.Equal(t, empty.StringKind(), empty.KindOf("bind"))
}
