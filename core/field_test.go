package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinFields(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		want   string
	}{
		{name: "empty", fields: nil, want: ""},
		{name: "single", fields: []Field{{Key: "a", Value: "1"}}, want: "a=1"},
		{
			name:   "several",
			fields: []Field{{Key: "a", Value: "1"}, {Key: "b", Value: "two"}},
			want:   "a=1 b=two",
		},
		{
			name:   "quoted",
			fields: []Field{{Key: "path", Value: "/a b"}},
			want:   `path="/a b"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinFields(tt.fields))
		})
	}
}
