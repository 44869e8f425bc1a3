package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftside/marketplace/internal/service"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Walnut Serving Bowl", "walnut-serving-bowl"},
		{"Hand-thrown mug", "hand-thrown-mug"},
		{"  Linen  Scarf  ", "linen-scarf"},
		{"100% Wool Throw!", "100-wool-throw"},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, service.Slugify(test.in), "input %q", test.in)
	}
}
