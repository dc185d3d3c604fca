package capi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/adjacent/internal/config"
	"github.com/abhisek/adjacent/internal/engine"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"denominator", "doNotLaunch", "firstQuestion", "lastQuestion",
		"mastery", "numerator", "undirected", "weighted",
	}, Names())
}

func TestExport(t *testing.T) {
	st := engine.State{Config: config.Default(), MasteryAchieved: true}
	vars := Export(st)

	assert.Equal(t, "true", vars[Mastery])
	assert.Equal(t, "4", vars[Numerator])
	assert.Equal(t, "5", vars[Denominator])
	assert.Equal(t, "true", vars[Undirected])
	assert.Equal(t, "false", vars[Weighted])
	assert.Equal(t, "0", vars[FirstQuestion])
	assert.Equal(t, "1", vars[LastQuestion])
	assert.Equal(t, "false", vars[DoNotLaunch])
	assert.Len(t, vars, 8)
}

func TestGet(t *testing.T) {
	st := engine.State{Config: config.Default()}
	v, err := Get(st, Numerator)
	require.NoError(t, err)
	assert.Equal(t, "4", v)

	_, err = Get(st, "colour")
	assert.ErrorIs(t, err, ErrUnknownVariable)
}

func TestApply(t *testing.T) {
	cfg, err := Apply(config.Default(), map[string]string{
		Numerator:   "2",
		Denominator: "3",
		Weighted:    "true",
		DoNotLaunch: "true",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MasteryNumerator)
	assert.Equal(t, 3, cfg.MasteryDenominator)
	assert.True(t, cfg.Weighted)
	assert.True(t, cfg.SuppressAutoStart)
	assert.False(t, cfg.RandomizeModes)
}

func TestApply_KeepsRandomizationWithoutModes(t *testing.T) {
	cfg, err := Apply(config.Default(), map[string]string{Numerator: "3"})
	require.NoError(t, err)
	assert.True(t, cfg.RandomizeModes)
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want error
	}{
		{"unknown", map[string]string{"colour": "red"}, ErrUnknownVariable},
		{"read only", map[string]string{Mastery: "true"}, ErrReadOnly},
		{"bad int", map[string]string{Numerator: "four"}, ErrInvalidValue},
		{"bad bool", map[string]string{Weighted: "yes"}, ErrInvalidValue},
		{"capitalized bool", map[string]string{Undirected: "True"}, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := config.Default()
			got, err := Apply(base, tt.vars)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, base, got)
		})
	}
}

func TestApply_AllOrNothing(t *testing.T) {
	base := config.Default()
	got, err := Apply(base, map[string]string{
		Denominator: "9",
		Weighted:    "maybe",
	})
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, base, got)
}
