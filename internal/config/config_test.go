package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "2025-06-21", cfg.Planner.TargetDate)
	assert.Equal(t, []float64{0.2, 0.3, 0.3, 0.2}, cfg.Planner.HighEfficiencyFractions)
	assert.Equal(t, []float64{0.3, 0.25, 0.25, 0.2}, cfg.Planner.StandardFractions)
	assert.Equal(t, 0.5, cfg.Planner.RestBlockHours)
	assert.Equal(t, 6.0, cfg.Planner.DefaultStudyHours)
	assert.False(t, cfg.Planner.StrictOptions)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("store.driver", "REDIS")
	v.Set("planner.target_date", "2027-11-18")
	v.Set("planner.standard_fractions", "0.25, 0.25, 0.25, 0.25")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "2027-11-18", cfg.Planner.TargetDate)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, cfg.Planner.StandardFractions)
}

func TestFromViper_RejectsBadPlannerSettings(t *testing.T) {
	t.Run("fraction count", func(t *testing.T) {
		v := viper.New()
		setDefaults(v)
		v.Set("planner.high_efficiency_fractions", []float64{0.5, 0.5})
		_, err := fromViper(v)
		assert.Error(t, err)
	})

	t.Run("target date", func(t *testing.T) {
		v := viper.New()
		setDefaults(v)
		v.Set("planner.target_date", "21/06/2025")
		_, err := fromViper(v)
		assert.Error(t, err)
	})
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{DB: DBConfig{Driver: "oracle", Host: "db", Port: 1521, User: "u", Password: "p", DBName: "STUDY"}}
	assert.Equal(t, "oracle://u:p@db:1521/STUDY", cfg.GetDSN())

	cfg.DB.Driver = "godror"
	assert.Equal(t, `user="u" password="p" connectString="db:1521/STUDY"`, cfg.GetDSN())
}
