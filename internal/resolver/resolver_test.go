package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	name        string
	countryHit  bool
}

func scoreByLen(i item) int {
	return len(i.name)
}

func boostCountry(i item, base int) int {
	if i.countryHit {
		return base + 10
	}
	return base
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.False(t, IsBlank("acme"))
}

func TestParseColonHint_SplitsOnFirstColon(t *testing.T) {
	left, hint := ParseColonHint("ammonium paratungstate:briquette")
	assert.Equal(t, "ammonium paratungstate", left)
	assert.Equal(t, "briquette", hint)
}

func TestParseColonHint_NoColonReturnsWholeQuery(t *testing.T) {
	left, hint := ParseColonHint("platinum")
	assert.Equal(t, "platinum", left)
	assert.Equal(t, "", hint)
}

func TestResolve_EmptyPoolReturnsNoMatch(t *testing.T) {
	_, ok := Resolve([]item{}, false, scoreByLen, nil, 50)
	assert.False(t, ok)
}

func TestResolve_ExactSingleCandidateSkipsScoring(t *testing.T) {
	pool := []item{{name: "x"}}
	result, ok := Resolve(pool, true, scoreByLen, nil, 90)
	assert.True(t, ok)
	assert.Equal(t, 100, result.Score)
}

func TestResolve_BelowThresholdReturnsNoMatch(t *testing.T) {
	pool := []item{{name: "ab"}, {name: "cd"}}
	_, ok := Resolve(pool, false, scoreByLen, nil, 90)
	assert.False(t, ok)
}

func TestResolve_AboveThresholdReturnsBest(t *testing.T) {
	pool := []item{{name: "a"}, {name: "abcdefghijklmnop"}}
	result, ok := Resolve(pool, false, scoreByLen, nil, 10)
	assert.True(t, ok)
	assert.Equal(t, "abcdefghijklmnop", result.Row.name)
}

func TestResolve_BoostAppliedAndClamped(t *testing.T) {
	pool := []item{{name: "abcdefghijklmnopqrstuvwxyz", countryHit: true}}
	result, ok := Resolve(pool, false, func(i item) int { return 95 }, boostCountry, 90)
	assert.True(t, ok)
	assert.Equal(t, 100, result.Score) // 95+10 clamped to 100
}

func TestTopK_ReturnsDescendingLimitedResults(t *testing.T) {
	pool := []item{{name: "a"}, {name: "ab"}, {name: "abc"}, {name: "abcd"}}
	top := TopK(pool, scoreByLen, nil, 2)
	assert.Len(t, top, 2)
	assert.Equal(t, "abcd", top[0].Row.name)
	assert.Equal(t, "abc", top[1].Row.name)
}

func TestTopK_KZeroReturnsAll(t *testing.T) {
	pool := []item{{name: "a"}, {name: "ab"}}
	top := TopK(pool, scoreByLen, nil, 0)
	assert.Len(t, top, 2)
}
