package graphnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type PairDayData struct {
	Base
}

type AthleteXFactory struct {
	Base
}

func TestRegistryTableNames(t *testing.T) {
	registry := NewRegistry(&PairDayData{}, &AthleteXFactory{})

	name, err := registry.TableName(&PairDayData{})
	require.NoError(t, err)
	assert.Equal(t, "pair_day_data", name)

	name, err = registry.TableName(&AthleteXFactory{})
	require.NoError(t, err)
	assert.Equal(t, "athlete_x_factory", name)
}

func TestRegistryTableNameUnregistered(t *testing.T) {
	registry := NewRegistry(&PairDayData{})

	_, err := registry.TableName(&AthleteXFactory{})
	require.Error(t, err)
}

func TestRegistryNewInstance(t *testing.T) {
	registry := NewRegistry(&PairDayData{}, &AthleteXFactory{})

	ent, err := registry.NewInstance("athlete_x_factory")
	require.NoError(t, err)
	require.IsType(t, &AthleteXFactory{}, ent)
	require.False(t, ent.Exists())

	_, err = registry.NewInstance("bogus")
	require.Error(t, err)
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Pair", "pair"},
		{"PairDayData", "pair_day_data"},
		{"AthleteXFactory", "athlete_x_factory"},
		{"AthleteXDayData", "athlete_x_day_data"},
		{"LiquidityPositionSnapshot", "liquidity_position_snapshot"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, snakeCase(test.in), "input %q", test.in)
	}
}
