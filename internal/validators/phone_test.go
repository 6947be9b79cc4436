package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "11988887777", NormalizePhone("(11) 98888-7777"))
	assert.Equal(t, "11988887777", NormalizePhone("11 98888 7777"))
	assert.Equal(t, "5511988887777", NormalizePhone("+55 11 98888-7777"))
	assert.Equal(t, "", NormalizePhone("sem números"))
}

func TestIsPhoneValid(t *testing.T) {
	assert.True(t, IsPhoneValid("(11) 98888-7777"))
	assert.True(t, IsPhoneValid("1133334444")) // fixo com DDD

	assert.False(t, IsPhoneValid("98888-7777"))        // sem DDD
	assert.False(t, IsPhoneValid(""))                  // vazio
	assert.False(t, IsPhoneValid("1234567890123456"))  // longo demais
}
