package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "no-at-sign", "@example.com", "trailing@"} {
		assert.False(t, IsEmailDomainValid(in), in)
	}
}
