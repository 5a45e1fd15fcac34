package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2021-01-02")
	assert.NoError(t, err)
	assert.Equal(t, Date("2021-01-02"), d)

	_, err = ParseDate("02/01/2021")
	assert.Error(t, err)

	_, err = ParseDate("2021-02-30")
	assert.Error(t, err)
}

func TestDateArithmetic(t *testing.T) {
	assert.Equal(t, Date("2020-12-31"), Date("2021-01-01").AddDays(-1))
	assert.Equal(t, Date("2020-03-01"), Date("2020-02-29").AddDays(1))
	assert.Equal(t, Date(""), Date("").AddDays(-1))

	assert.True(t, Date("2020-12-31").Before("2021-01-01"))
	assert.False(t, Date("2021-01-01").Before("2021-01-01"))
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	assert.Equal(t, Date("2021-01-01"), DateOf(time.Date(2021, 1, 2, 3, 0, 0, 0, loc)))
	assert.True(t, Date("").Time().IsZero())
	assert.True(t, Date("").IsZero())
}
